// Package scaffold generates example and category project trees from embedded
// templates. It powers the "fhevm-scaffold example" and "fhevm-scaffold
// category" commands, producing a ready-to-run hardhat project (package.json,
// hardhat config, README, ignore file) with the standard contracts/, test/,
// deploy/, and scripts/ directories; category projects additionally get a
// tsconfig and one sample contract with its test.
package scaffold
