// Package renderer builds the markdown screens of the interactive ledger.
// All functions are pure string-out; the terminal layer decides how the
// markdown is displayed.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/devinhero/ledgers"
)

// banner is the masthead, kept verbatim from the classic app.
const banner = ` _____             _        __          _
|  |  |___ ___ ___|_|___   |  |   ___ _| |___ ___ ___ ___
|     | -_|  _| . | |  _|  |  |__| -_| . | . | -_|  _|_ -|
|__|__|___|_| |___|_|___|  |_____|___|___|_  |___|_| |___|
                                         |___|
                       Heroic Ledgers, (C) 2018 Devin Hero
__________________________________________________________`

// Screen renders the standard screen frame: masthead, the logged-in user if
// any, and the status line left by the previous action.
func Screen(user, status string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.CodeBlocks(md.SyntaxHighlightText, banner)
	if user != "" {
		doc.PlainText(fmt.Sprintf("Logged in as %s", user)).LF()
	}
	doc.PlainText(status).LF()
	return doc.String()
}

// HistoryScreen renders one page of transaction history: the frame, the
// navigation header, and the page's items with the newest at the bottom of
// the block. Each item keeps the classic record format, timestamp then the
// signed amount right-aligned to width 17.
func HistoryScreen(user string, page, maxPage int, items []ledgers.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.CodeBlocks(md.SyntaxHighlightText, banner)
	if user != "" {
		doc.PlainText(fmt.Sprintf("Logged in as %s", user)).LF()
	}
	doc.CodeBlocks(md.SyntaxHighlightText, historyOptions(page, maxPage))
	if len(items) > 0 {
		lines := make([]string, 0, len(items))
		for _, tx := range items {
			lines = append(lines, tx.String())
		}
		doc.CodeBlocks(md.SyntaxHighlightText, strings.Join(lines, "\n"))
	}
	return doc.String()
}

// historyOptions formats the navigation header. The arrow that cannot move
// further is shown without its label.
func historyOptions(page, maxPage int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Viewing transaction history. Page %d of %d\n", page+1, maxPage+1)
	if page < maxPage {
		b.WriteString("Older (<-)")
	} else {
		b.WriteString("      (<-)")
	}
	b.WriteString("      (Q) Quit      ")
	if page > 0 {
		b.WriteString("(->) Newer")
	} else {
		b.WriteString("(->)")
	}
	return b.String()
}
