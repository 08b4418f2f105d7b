package ledgers

import "errors"

// Error taxonomy for the ledger. Callers match with errors.Is; the session
// layer turns every one of these into a status line, never a crash.
var (
	// ErrInvalidInput reports an unusable field, such as a blank username.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUsernameTaken reports a registration against an existing username.
	ErrUsernameTaken = errors.New("username taken")
	// ErrNotFound reports an operation against an unknown username.
	ErrNotFound = errors.New("account not found")
	// ErrBadCredentials reports a password that does not match the stored
	// credential.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrInsufficientFunds reports a withdrawal that would drive the balance
	// below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount reports an amount string outside the accepted grammar.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrStoreFailure reports an unexpected failure of the underlying store.
	ErrStoreFailure = errors.New("store failure")
)
