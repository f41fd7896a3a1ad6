package registry

// DocTopics is the table behind `fhevm-scaffold docs`.
var DocTopics = newTable(docTopicList, func(d DocTopic) string { return d.Key })

var docTopicList = []DocTopic{
	{
		Key:          "fhe-counter",
		Title:        "FHE Counter",
		Description:  "Build and test a counter that keeps its value encrypted on chain.",
		Difficulty:   Beginner,
		ContractFile: "contracts/basics/FHECounter.sol",
		TestFile:     "test/basics/FHECounter.ts",
		Chapter:      "Getting Started",
	},
	{
		Key:          "fhe-add",
		Title:        "FHE Add",
		Description:  "Add two encrypted inputs and store the encrypted result.",
		Difficulty:   Beginner,
		ContractFile: "contracts/basics/FHEAdd.sol",
		TestFile:     "test/basics/FHEAdd.ts",
		Chapter:      "Getting Started",
	},
	{
		Key:          "encrypt-single-value",
		Title:        "Encrypting a Single Value",
		Description:  "Client-side encryption, input proofs, and FHE.fromExternal.",
		Difficulty:   Beginner,
		ContractFile: "contracts/encryption/EncryptSingleValue.sol",
		TestFile:     "test/encryption/EncryptSingleValue.ts",
		Chapter:      "Encryption",
	},
	{
		Key:          "encrypt-multiple-values",
		Title:        "Encrypting Multiple Values",
		Description:  "One input proof covering a batch of mixed encrypted types.",
		Difficulty:   Beginner,
		ContractFile: "contracts/encryption/EncryptMultipleValues.sol",
		TestFile:     "test/encryption/EncryptMultipleValues.ts",
		Chapter:      "Encryption",
	},
	{
		Key:          "decrypt-single-value",
		Title:        "User Decryption",
		Description:  "Re-encrypt a ciphertext to a user keypair and decrypt it locally.",
		Difficulty:   Intermediate,
		ContractFile: "contracts/decryption/DecryptSingleValue.sol",
		TestFile:     "test/decryption/DecryptSingleValue.ts",
		Chapter:      "Decryption",
	},
	{
		Key:          "public-decrypt-single-value",
		Title:        "Public Decryption",
		Description:  "Reveal a ciphertext to everyone through the decryption oracle.",
		Difficulty:   Intermediate,
		ContractFile: "contracts/decryption/PublicDecryptSingleValue.sol",
		TestFile:     "test/decryption/PublicDecryptSingleValue.ts",
		Chapter:      "Decryption",
	},
	{
		Key:          "acl-basics",
		Title:        "Access Control",
		Description:  "Grant, scope, and check permissions on ciphertexts.",
		Difficulty:   Intermediate,
		ContractFile: "contracts/access/ACLBasics.sol",
		TestFile:     "test/access/ACLBasics.ts",
		Chapter:      "Access Control",
	},
	{
		Key:          "confidential-erc20",
		Title:        "Confidential ERC20",
		Description:  "A token with encrypted balances and branchless transfers.",
		Difficulty:   Advanced,
		ContractFile: "contracts/trading/ConfidentialERC20.sol",
		TestFile:     "test/trading/ConfidentialERC20.ts",
		Chapter:      "Confidential Trading",
	},
	{
		Key:          "sealed-bid-auction",
		Title:        "Sealed-Bid Auction",
		Description:  "Keep bids encrypted until close and decrypt only the winner.",
		Difficulty:   Advanced,
		ContractFile: "contracts/trading/SealedBidAuction.sol",
		TestFile:     "test/trading/SealedBidAuction.ts",
		Chapter:      "Confidential Trading",
	},
	{
		Key:          "private-trading-platform",
		Title:        "Private Trading Platform",
		Description:  "An order book that matches encrypted orders without leaking them.",
		Difficulty:   Advanced,
		ContractFile: "contracts/trading/PrivateTradingPlatform.sol",
		TestFile:     "test/trading/PrivateTradingPlatform.ts",
		Chapter:      "Confidential Trading",
	},
}
