package ledgers

import (
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestAccount(t *testing.T, name string) *Account {
	t.Helper()
	credential, err := NewCredential("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredential() failed: %v", err)
	}
	return NewAccount(name, credential)
}

func TestMemoryStore_CreateAndExists(t *testing.T) {
	store := NewMemoryStore()

	if store.Exists("alice") {
		t.Fatal("Exists() = true on an empty store")
	}
	if !store.Create("alice", newTestAccount(t, "alice")) {
		t.Fatal("Create() = false, want true")
	}
	if !store.Exists("alice") {
		t.Fatal("Exists() = false after Create")
	}
	// Second create under the same key must fail and leave the record alone.
	if store.Create("alice", newTestAccount(t, "alice")) {
		t.Fatal("Create() = true for a taken username")
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Create("alice", newTestAccount(t, "alice"))

	got, ok := store.Get("alice")
	if !ok {
		t.Fatal("Get() not found after Create")
	}
	// Mutating the returned copy must not touch the stored record.
	got.Append(NewTransaction(time.Now(), USD(100)))

	again, _ := store.Get("alice")
	if len(again.Transactions()) != 0 {
		t.Error("mutation of a Get() copy leaked into the store")
	}
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()

	if store.Update("ghost", newTestAccount(t, "ghost")) {
		t.Fatal("Update() = true for an absent username")
	}

	store.Create("alice", newTestAccount(t, "alice"))
	account, _ := store.Get("alice")
	account.Append(NewTransaction(time.Now(), USD(100)))
	if !store.Update("alice", account) {
		t.Fatal("Update() = false for a present username")
	}

	got, _ := store.Get("alice")
	if len(got.Transactions()) != 1 {
		t.Errorf("stored record has %d transactions, want 1", len(got.Transactions()))
	}
}

func TestMemoryStore_Mutate(t *testing.T) {
	store := NewMemoryStore()
	store.Create("alice", newTestAccount(t, "alice"))

	if err := store.Mutate("ghost", func(*Account) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Mutate(ghost) error = %v, want ErrNotFound", err)
	}

	// A failing fn must leave the record untouched.
	boom := errors.New("boom")
	err := store.Mutate("alice", func(account *Account) error {
		account.Append(NewTransaction(time.Now(), USD(100)))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Mutate() error = %v, want boom", err)
	}
	got, _ := store.Get("alice")
	if len(got.Transactions()) != 0 {
		t.Error("failed Mutate() mutated the stored record")
	}

	// A succeeding fn commits.
	err = store.Mutate("alice", func(account *Account) error {
		account.Append(NewTransaction(time.Now(), USD(100)))
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate() returned unexpected error: %v", err)
	}
	got, _ = store.Get("alice")
	if len(got.Transactions()) != 1 {
		t.Errorf("stored record has %d transactions, want 1", len(got.Transactions()))
	}
}

func TestMemoryStore_MutateSerializesPerKey(t *testing.T) {
	store := NewMemoryStore()
	store.Create("alice", newTestAccount(t, "alice"))

	// 50 concurrent unit deposits through Mutate: with per-key locking the
	// read-modify-write cycles cannot lose updates.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Mutate("alice", func(account *Account) error {
				account.Append(NewTransaction(time.Now(), USD(1)))
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := store.Get("alice")
	if balance := got.Balance(); !balance.Equal(USD(50)) {
		t.Errorf("balance after 50 concurrent posts = %s, want 50.00", balance.Fixed())
	}
}
