package ledgers

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = "USD"

// Service implements the ledger's business rules over a Store. It holds no
// account state of its own: every operation fetches, acts, and returns
// within a single call.
type Service struct {
	store    Store
	currency string
	hashCost int

	now func() time.Time // test hook
}

// NewService creates a service over the given store. Amounts parse and
// display in the given currency; hashCost is the bcrypt cost for new
// credentials (0 selects the bcrypt default).
func NewService(store Store, currency string, hashCost int) *Service {
	if currency == "" {
		currency = DefaultCurrency
	}
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &Service{store: store, currency: currency, hashCost: hashCost, now: time.Now}
}

// Currency returns the service's display currency.
func (s *Service) Currency() string { return s.currency }

// Parse parses a user-entered amount string in the service currency.
func (s *Service) Parse(amount string) (Money, error) {
	return ParseMoney(amount, s.currency)
}

// Exists reports whether a username is registered.
func (s *Service) Exists(username string) bool {
	return s.store.Exists(username)
}

// Register creates an account with zero transactions. It fails with
// ErrInvalidInput on a blank username and ErrUsernameTaken if the username
// is already stored.
func (s *Service) Register(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: blank username", ErrInvalidInput)
	}
	if s.store.Exists(username) {
		return fmt.Errorf("%w: %q", ErrUsernameTaken, username)
	}
	credential, err := NewCredential(password, s.hashCost)
	if err != nil {
		return fmt.Errorf("%w: hashing credential: %v", ErrStoreFailure, err)
	}
	if !s.store.Create(username, NewAccount(username, credential)) {
		return fmt.Errorf("%w: %q", ErrUsernameTaken, username)
	}
	return nil
}

// Authenticate verifies the credentials. It fails with ErrNotFound for an
// unknown username and ErrBadCredentials for a password mismatch.
func (s *Service) Authenticate(username, password string) error {
	account, ok := s.store.Get(username)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, username)
	}
	if !account.Credential().Match(password) {
		return fmt.Errorf("%w: %q", ErrBadCredentials, username)
	}
	return nil
}

// Balance returns the sum of the account's transaction amounts, zero if the
// account has none.
func (s *Service) Balance(username, password string) (Money, error) {
	if err := s.Authenticate(username, password); err != nil {
		return Money{}, err
	}
	account, ok := s.store.Get(username)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrNotFound, username)
	}
	return M(0, s.currency).Add(account.Balance()), nil
}

// Post appends a signed transaction to the account. A negative amount is a
// withdrawal and fails with ErrInsufficientFunds when it would drive the
// balance below zero; a balance of exactly zero is allowed. The funds check
// and the append happen in one critical section on the account.
func (s *Service) Post(username, password string, amount Money) (Transaction, error) {
	if err := s.Authenticate(username, password); err != nil {
		return Transaction{}, err
	}
	var posted Transaction
	err := s.store.Mutate(username, func(account *Account) error {
		balance := account.Balance()
		if balance.Add(amount).IsNegative() {
			return fmt.Errorf("%w: balance %s", ErrInsufficientFunds, balance.Fixed())
		}
		posted = NewTransaction(s.now(), amount)
		account.Append(posted)
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return posted, nil
}

// Deposit posts the amount as a credit.
func (s *Service) Deposit(username, password string, amount Money) (Transaction, error) {
	return s.Post(username, password, amount.Abs())
}

// Withdraw posts the amount as a debit.
func (s *Service) Withdraw(username, password string, amount Money) (Transaction, error) {
	return s.Post(username, password, amount.Abs().Neg())
}

// History returns the account's transactions newest-first.
func (s *Service) History(username, password string) ([]Transaction, error) {
	if err := s.Authenticate(username, password); err != nil {
		return nil, err
	}
	account, ok := s.store.Get(username)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, username)
	}
	return account.History(), nil
}
