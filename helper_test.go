package ledgers

import "golang.org/x/crypto/bcrypt"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// newTestService creates a service over a fresh in-memory store with the
// cheapest hash cost, so tests don't pay for bcrypt.
func newTestService() *Service {
	return NewService(NewMemoryStore(), "USD", bcrypt.MinCost)
}
