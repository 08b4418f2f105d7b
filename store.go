package ledgers

import "sync"

// Store is the key-value account store consumed by the Service. Keys are
// usernames, case-sensitive.
//
// Exists, Create, Get and Update are the original cache-style operations.
// Mutate runs a read-modify-write under the account's own lock, so a post
// (read balance, check funds, append, write back) is one critical section
// even when several sessions share the store.
type Store interface {
	Exists(username string) bool
	// Create inserts a new record. It returns false, with no side effect,
	// if the username is already present.
	Create(username string, account *Account) bool
	Get(username string) (*Account, bool)
	// Update replaces the stored record. It returns false if the username
	// is absent.
	Update(username string, account *Account) bool
	Mutate(username string, fn func(*Account) error) error
}

// MemoryStore is the in-memory Store. It exclusively owns its records:
// accounts pass in and out by deep copy.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]*Account
	locks    map[string]*sync.Mutex
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*Account),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Exists reports whether a record is stored under this username.
func (s *MemoryStore) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accounts[username]
	return ok
}

// Create inserts a copy of the account, or returns false if the username is
// taken.
func (s *MemoryStore) Create(username string, account *Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[username]; ok {
		return false
	}
	s.accounts[username] = account.clone()
	return true
}

// Get returns a copy of the stored record.
func (s *MemoryStore) Get(username string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, false
	}
	return account.clone(), true
}

// Update replaces the stored record with a copy of the account, or returns
// false if the username is absent.
func (s *MemoryStore) Update(username string, account *Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[username]; !ok {
		return false
	}
	s.accounts[username] = account.clone()
	return true
}

// Mutate runs fn on a working copy of the record under the account's lock
// and writes the copy back only if fn succeeds. It returns ErrNotFound if
// the username is absent.
func (s *MemoryStore) Mutate(username string, fn func(*Account) error) error {
	lock := s.lock(username)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	account, ok := s.accounts[username]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	working := account.clone()
	if err := fn(working); err != nil {
		return err
	}

	s.mu.Lock()
	s.accounts[username] = working
	s.mu.Unlock()
	return nil
}

// lock returns the mutex serializing mutations for one username.
func (s *MemoryStore) lock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}
