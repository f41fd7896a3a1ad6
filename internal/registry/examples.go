package registry

// Examples is the table behind `fhevm-scaffold example`.
var Examples = newTable(exampleList, func(e Example) string { return e.Key })

var exampleList = []Example{
	{
		Key:         "fhe-counter",
		Title:       "FHE Counter",
		Description: "A simple counter whose value is stored as an encrypted euint32. Increment and decrement operate directly on ciphertext, so the count never appears in cleartext on chain.",
		Difficulty:  Beginner,
		Concepts: []string{
			"Encrypted state variables (euint32)",
			"FHE.add and FHE.sub on ciphertext",
			"Granting the contract and caller access with FHE.allow",
		},
	},
	{
		Key:         "fhe-add",
		Title:       "FHE Add",
		Description: "The smallest possible FHEVM contract: add two encrypted inputs and store the encrypted sum. A good first read before the counter.",
		Difficulty:  Beginner,
		Concepts: []string{
			"External encrypted inputs (externalEuint32)",
			"Input proof verification with FHE.fromExternal",
			"Homomorphic addition",
		},
	},
	{
		Key:         "encrypt-single-value",
		Title:       "Encrypt Single Value",
		Description: "Shows how a client encrypts one value against the contract and sends it with its zero-knowledge input proof, and how the contract converts the external handle into usable ciphertext.",
		Difficulty:  Beginner,
		Concepts: []string{
			"Client-side encryption with the relayer SDK",
			"externalEuint32 handles and input proofs",
			"FHE.fromExternal",
		},
	},
	{
		Key:         "encrypt-multiple-values",
		Title:       "Encrypt Multiple Values",
		Description: "Packs several values of different encrypted types into a single input proof, demonstrating how one proof covers a whole batch of ciphertexts.",
		Difficulty:  Beginner,
		Concepts: []string{
			"Batched encrypted inputs (ebool, euint32, eaddress)",
			"One input proof for many handles",
			"Mixed encrypted type handling",
		},
	},
	{
		Key:         "decrypt-single-value",
		Title:       "User Decrypt Single Value",
		Description: "A user re-encrypts one ciphertext to their own keypair and decrypts it locally. Nothing is revealed on chain; only the authorized user learns the value.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"User decryption (re-encryption) flow",
			"FHE.allow for per-user ciphertext access",
			"Keypair-based local decryption",
		},
	},
	{
		Key:         "decrypt-multiple-values",
		Title:       "User Decrypt Multiple Values",
		Description: "Extends the single-value flow to a batch: the user decrypts several ciphertexts of different types in one round trip.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"Batch user decryption",
			"Access control across multiple handles",
		},
	},
	{
		Key:         "public-decrypt-single-value",
		Title:       "Public Decrypt Single Value",
		Description: "Requests a public decryption from the decryption oracle and receives the cleartext in a callback. Once publicly decrypted, the value is visible to everyone.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"FHE.requestDecryption and the oracle callback",
			"FHE.makePubliclyDecryptable",
			"Request ID bookkeeping",
		},
	},
	{
		Key:         "public-decrypt-multiple-values",
		Title:       "Public Decrypt Multiple Values",
		Description: "Publicly decrypts a batch of ciphertexts in a single oracle request and validates the callback signatures.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"Batched oracle decryption",
			"Callback signature verification with FHE.checkSignatures",
		},
	},
	{
		Key:         "acl-basics",
		Title:       "Access Control Basics",
		Description: "Walks through the FHEVM access control list: which addresses may use a ciphertext, how permissions are granted permanently or for one transaction, and what happens when access is missing.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"FHE.allow, FHE.allowThis, FHE.allowTransient",
			"FHE.isSenderAllowed checks",
			"Why every new ciphertext needs fresh permissions",
		},
	},
	{
		Key:         "confidential-erc20",
		Title:       "Confidential ERC20",
		Description: "An ERC20-style token whose balances and transfer amounts are encrypted. Transfers use FHE.select to silently clamp overdrafts instead of reverting, so failed transfers are indistinguishable from successful ones.",
		Difficulty:  Advanced,
		Concepts: []string{
			"Encrypted balances (euint64)",
			"Branchless transfers with FHE.select",
			"Error handles instead of reverts",
		},
	},
	{
		Key:         "sealed-bid-auction",
		Title:       "Sealed-Bid Auction",
		Description: "A first-price auction where bids stay encrypted until the auction closes. The winner is selected homomorphically, and only the winning bid is ever decrypted.",
		Difficulty:  Advanced,
		Concepts: []string{
			"Encrypted comparisons (FHE.gt, FHE.select)",
			"Time-boxed bidding phases",
			"Selective decryption of the winner only",
		},
	},
	{
		Key:         "private-trading-platform",
		Title:       "Private Trading Platform",
		Description: "A toy exchange where order sizes and limit prices are encrypted end to end. Orders match homomorphically so the book never leaks positions, and settlement moves encrypted token balances.",
		Difficulty:  Advanced,
		Concepts: []string{
			"Encrypted order book (euint64 size, euint64 price)",
			"Homomorphic order matching with FHE.le and FHE.select",
			"Settlement against confidential token balances",
			"Operator pattern for delegated trading",
		},
	},
}
