package session

import (
	"slices"
	"testing"
	"time"

	"github.com/devinhero/ledgers"
)

// newestFirst builds a newest-first history of n unit transactions where the
// newest carries amount n and the oldest amount 1.
func newestFirst(n int) []ledgers.Transaction {
	items := make([]ledgers.Transaction, 0, n)
	at := time.Now()
	for v := n; v >= 1; v-- {
		items = append(items, ledgers.NewTransaction(at, ledgers.M(v, "USD")))
	}
	return items
}

func amounts(items []ledgers.Transaction) []string {
	out := make([]string, 0, len(items))
	for _, tx := range items {
		out = append(out, tx.Amount.Fixed())
	}
	return out
}

func fixed(values ...int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, ledgers.M(v, "USD").Fixed())
	}
	return out
}

func TestPager_ThirteenItems(t *testing.T) {
	p := NewPager(newestFirst(13))

	if got := p.MaxPage(); got != 2 {
		t.Fatalf("MaxPage() = %d, want 2", got)
	}

	// Page 0 holds items 13..8, displayed oldest-of-page first: 8..13.
	if got := amounts(p.Items()); !slices.Equal(got, fixed(8, 9, 10, 11, 12, 13)) {
		t.Errorf("page 0 items = %v, want [8..13]", got)
	}

	if !p.Older() {
		t.Fatal("Older() from page 0 = false")
	}
	if got := amounts(p.Items()); !slices.Equal(got, fixed(2, 3, 4, 5, 6, 7)) {
		t.Errorf("page 1 items = %v, want [2..7]", got)
	}

	if !p.Older() {
		t.Fatal("Older() from page 1 = false")
	}
	if got := amounts(p.Items()); !slices.Equal(got, fixed(1)) {
		t.Errorf("page 2 items = %v, want [1]", got)
	}

	// Clamped at the oldest page.
	if p.Older() {
		t.Error("Older() beyond the oldest page = true")
	}
	if p.Page() != 2 {
		t.Errorf("Page() = %d, want 2", p.Page())
	}

	p.Newer()
	p.Newer()
	// Clamped at page 0.
	if p.Newer() {
		t.Error("Newer() below page 0 = true")
	}
	if p.Page() != 0 {
		t.Errorf("Page() = %d, want 0", p.Page())
	}
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(nil)
	if got := p.MaxPage(); got != 0 {
		t.Errorf("MaxPage() = %d, want 0", got)
	}
	if items := p.Items(); len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}
	if p.Older() || p.Newer() {
		t.Error("navigation on an empty pager moved the page")
	}
}

func TestPager_ExactMultiple(t *testing.T) {
	p := NewPager(newestFirst(12))
	if got := p.MaxPage(); got != 1 {
		t.Errorf("MaxPage() = %d, want 1", got)
	}
	p.Older()
	if got := len(p.Items()); got != 6 {
		t.Errorf("page 1 has %d items, want 6", got)
	}
}

