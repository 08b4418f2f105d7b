package ledgers

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// timeLayout is how transaction timestamps are displayed.
const timeLayout = "2006-01-02 15:04:05"

// Transaction is a single signed movement of money on an account: positive
// amounts are deposits, negative amounts are withdrawals. Once appended to
// an account it is immutable and never removed.
type Transaction struct {
	ID     ulid.ULID // time-ordered unique identifier
	Time   time.Time // wall-clock time of posting
	Amount Money
}

// NewTransaction creates a transaction posted at the given time.
func NewTransaction(at time.Time, amount Money) Transaction {
	return Transaction{ID: ulid.Make(), Time: at, Amount: amount}
}

// Equal reports whether two transactions are the same posting.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Time.Equal(o.Time) && t.Amount.Equal(o.Amount)
}

// String renders the transaction as a history line: the timestamp, an
// ellipsis, and the signed amount right-aligned to width 17 with two
// fraction digits.
func (t Transaction) String() string {
	return fmt.Sprintf("%s ... %17s", t.Time.Format(timeLayout), t.Amount.Fixed())
}
