package registry

// Categories is the table behind `fhevm-scaffold category`.
var Categories = newTable(categoryList, func(c Category) string { return c.Key })

var categoryList = []Category{
	{
		Key:         "basics",
		Title:       "FHEVM Basics",
		Description: "Entry-level examples covering encrypted state, encrypted inputs, and the first homomorphic operations. Start here if you have never written an FHEVM contract.",
		Difficulty:  Beginner,
		Concepts: []string{
			"Encrypted integer types",
			"External inputs and input proofs",
			"Basic FHE arithmetic",
		},
		Examples: []string{
			"fhe-add",
			"fhe-counter",
			"encrypt-single-value",
			"encrypt-multiple-values",
		},
	},
	{
		Key:         "decryption",
		Title:       "Decryption Patterns",
		Description: "Every supported way to get a cleartext out of a ciphertext: user re-encryption for private reads and the decryption oracle for public reveals, in single and batched form.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"User decryption vs. public decryption",
			"Oracle callbacks and signature checks",
			"Batching decryption requests",
		},
		Examples: []string{
			"decrypt-single-value",
			"decrypt-multiple-values",
			"public-decrypt-single-value",
			"public-decrypt-multiple-values",
		},
	},
	{
		Key:         "access-control",
		Title:       "Access Control",
		Description: "How the FHEVM ACL governs who may compute on or decrypt a ciphertext, and the permission patterns every non-trivial contract needs.",
		Difficulty:  Intermediate,
		Concepts: []string{
			"Permanent and transient permissions",
			"Sender authorization checks",
			"Permissions across contract boundaries",
		},
		Examples: []string{
			"acl-basics",
		},
	},
	{
		Key:         "confidential-trading",
		Title:       "Confidential Trading",
		Description: "Advanced examples composing encrypted tokens, sealed auctions, and a private order book into a small confidential trading stack.",
		Difficulty:  Advanced,
		Concepts: []string{
			"Encrypted token balances",
			"Branchless business logic with FHE.select",
			"Selective decryption of outcomes",
		},
		Examples: []string{
			"confidential-erc20",
			"sealed-bid-auction",
			"private-trading-platform",
		},
	},
}
