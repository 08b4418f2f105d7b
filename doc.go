// Package ledgers implements the core of Heroic Ledgers, a terminal-driven
// personal ledger. It is deliberately local-first and entirely in-memory:
// one person at a time registers an account, authenticates, and moves money
// in and out of an append-only transaction record.
//
// The core functionalities include:
//   - Account Store: an in-memory key-value store mapping usernames to
//     account records, with per-account locking so read-modify-write posts
//     stay atomic even when the store is embedded in a concurrent host.
//   - Ledger Service: the business rules — registration, authentication
//     against bcrypt credentials, posting with an insufficient-funds guard,
//     and newest-first history retrieval.
//   - Money: exact decimal amounts with the strict input grammar inherited
//     from the original ledger (up to thirteen integer digits, at most two
//     fraction digits), formatted for display in a configurable currency.
//
// Balances are never stored: an account's balance is always the fold of its
// signed transaction amounts, so the ledger cannot diverge from its record.
//
// This package serves as the foundational logic for the `hl` command-line
// tool; the interactive screens live in the session package.
package ledgers
