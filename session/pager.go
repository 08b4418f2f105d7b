package session

import (
	"slices"

	"github.com/devinhero/ledgers"
)

// PageSize is the number of history items shown per screen.
const PageSize = 6

// Pager walks a newest-first transaction list page by page. Page 0 holds the
// newest items; moving "older" increases the index.
type Pager struct {
	items []ledgers.Transaction
	page  int
}

// NewPager creates a pager over a newest-first list, positioned on page 0.
func NewPager(items []ledgers.Transaction) *Pager {
	return &Pager{items: items}
}

// Page returns the current page index.
func (p *Pager) Page() int { return p.page }

// MaxPage returns the index of the oldest page. An empty list still counts
// one page, so the screen never reads "Page 1 of 0".
func (p *Pager) MaxPage() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) - 1) / PageSize
}

// Older moves toward the oldest page and reports whether the page changed.
func (p *Pager) Older() bool {
	if p.page < p.MaxPage() {
		p.page++
		return true
	}
	return false
}

// Newer moves toward page 0 and reports whether the page changed.
func (p *Pager) Newer() bool {
	if p.page > 0 {
		p.page--
		return true
	}
	return false
}

// Items returns the current page reordered for display: oldest of the page
// on top, newest at the bottom.
func (p *Pager) Items() []ledgers.Transaction {
	start := p.page * PageSize
	if start >= len(p.items) {
		return nil
	}
	end := min(start+PageSize, len(p.items))
	page := slices.Clone(p.items[start:end])
	slices.Reverse(page)
	return page
}
