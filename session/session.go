// Package session implements the screen state machine of the interactive
// ledger: Start, the login/create flows, the user menu, and the history
// viewer. Every operation failure becomes a status string on the next
// screen; nothing the user types can terminate the machine except Quit.
package session

import (
	"errors"
	"strings"
	"unicode"

	"github.com/devinhero/ledgers"
	"github.com/devinhero/ledgers/renderer"
)

// State enumerates the screens of the session state machine.
type State int

const (
	// Start is the welcome screen: login, create account, or quit.
	Start State = iota
	// Authenticating runs the login or account-creation prompts.
	Authenticating
	// LoggedIn is the user menu: withdraw, deposit, balance, history, logout.
	LoggedIn
	// ViewingHistory pages through the transaction history.
	ViewingHistory
	// Terminated is the end of the session; Run returns.
	Terminated
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Authenticating:
		return "authenticating"
	case LoggedIn:
		return "logged-in"
	case ViewingHistory:
		return "viewing-history"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// authMode selects which prompts the Authenticating state runs.
type authMode int

const (
	authLogin authMode = iota
	authCreate
)

const (
	// cancelWord cancels account creation, case-insensitive, with or
	// without surrounding double quotes.
	cancelWord = "cancel"
	// amountCancel cancels amount entry, case-insensitive.
	amountCancel = "q"
)

// Flow drives the session screens over a Console. One Step renders the
// current state, reads input, and transitions; Run loops until Terminated.
type Flow struct {
	svc *ledgers.Service
	con Console

	state  State
	mode   authMode
	status string

	// identity of the authenticated session; empty outside
	// LoggedIn/ViewingHistory.
	user, pass string

	pager *Pager
}

// New creates a flow on the Start screen.
func New(svc *ledgers.Service, con Console) *Flow {
	return &Flow{svc: svc, con: con, state: Start, status: "Welcome to Heroic Ledgers!"}
}

// State returns the machine's current state.
func (f *Flow) State() State { return f.state }

// Status returns the status line that the next screen refresh will show.
func (f *Flow) Status() string { return f.status }

// Run steps the machine until it terminates. The only errors it returns are
// console read failures (e.g. the input closing).
func (f *Flow) Run() error {
	for f.state != Terminated {
		if err := f.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes one transition of the state machine.
func (f *Flow) Step() error {
	switch f.state {
	case Start:
		return f.stepStart()
	case Authenticating:
		return f.stepAuthenticating()
	case LoggedIn:
		return f.stepLoggedIn()
	case ViewingHistory:
		return f.stepViewingHistory()
	default:
		return nil
	}
}

// refresh wipes the screen and redraws the frame with the given status.
func (f *Flow) refresh(status string) {
	f.con.Clear()
	f.con.WriteMarkdown(renderer.Screen(f.user, status))
}

func (f *Flow) stepStart() error {
	f.refresh(f.status)
	f.con.WriteLine("Please choose a following option:")
	f.con.WriteLine("(L) Login  (C) Create New Account  (Q) Quit")
	key, err := f.con.ReadKey()
	if err != nil {
		return err
	}
	switch lower(key) {
	case 'l':
		f.mode = authLogin
		f.status = "Logging in. Please provide username and password."
		f.state = Authenticating
	case 'c':
		f.mode = authCreate
		f.status = "Creating new account."
		f.state = Authenticating
	case 'q', rune(KeyInterrupt):
		f.state = Terminated
	default:
		f.status = "Unknown command."
	}
	return nil
}

func (f *Flow) stepAuthenticating() error {
	if f.mode == authCreate {
		return f.stepCreateAccount()
	}
	return f.stepLogin()
}

func (f *Flow) stepLogin() error {
	f.refresh(f.status)
	f.con.WriteLine("Username:")
	user, err := f.con.ReadLine()
	if err != nil {
		return err
	}
	f.con.WriteLine("Password:")
	pass, err := f.con.ReadPassword()
	if err != nil {
		return err
	}

	if err := f.svc.Authenticate(user, pass); err != nil {
		f.status = "Error: Could not authenticate credentials"
		f.state = Start
		return nil
	}
	f.user, f.pass = user, pass
	f.status = "Welcome, " + user
	f.state = LoggedIn
	return nil
}

// stepCreateAccount runs one round of the creation prompts. Blank or taken
// usernames and password mismatches keep the machine in the creation flow;
// the cancel keyword and a successful creation return to Start.
func (f *Flow) stepCreateAccount() error {
	f.refresh(f.status)
	f.con.WriteLine(`Please enter desired username (or type "cancel" to return):`)
	username, err := f.con.ReadLine()
	if err != nil {
		return err
	}

	if username == "" {
		f.status = "Error: Cannot create account with blank username."
		return nil
	}
	if isCancelWord(username) {
		f.status = "Account creation cancelled."
		f.state = Start
		return nil
	}
	if f.svc.Exists(username) {
		f.status = "Error: Account name \"" + username + "\" taken."
		return nil
	}

	f.con.WriteLine("Please enter password (will stay hidden):")
	pass, err := f.con.ReadPassword()
	if err != nil {
		return err
	}
	f.con.WriteLine("Please verify password:")
	verify, err := f.con.ReadPassword()
	if err != nil {
		return err
	}

	if verify != pass {
		f.status = "Password mismatch. New account not created."
		return nil
	}
	if err := f.svc.Register(username, pass); err != nil {
		f.status = "Error creating account."
	} else {
		f.status = "New account \"" + username + "\" created."
	}
	f.state = Start
	return nil
}

func (f *Flow) stepLoggedIn() error {
	f.refresh(f.status)
	f.con.WriteLine("Please choose a following option:")
	f.con.WriteLine("(W) Withdrawal  (D) Deposit  (B) Check Balance  (H) Transaction History  (Q) Logout")
	key, err := f.con.ReadKey()
	if err != nil {
		return err
	}
	switch lower(key) {
	case 'w':
		return f.withdraw()
	case 'd':
		return f.deposit()
	case 'b':
		f.checkBalance()
	case 'h':
		f.openHistory()
	case 'q':
		f.user, f.pass = "", ""
		f.status = "Logging out. Thank you for using Heroic Ledgers!"
		f.state = Start
	case rune(KeyInterrupt):
		f.state = Terminated
	default:
		f.status = "Unknown command."
	}
	return nil
}

func (f *Flow) checkBalance() {
	balance, err := f.svc.Balance(f.user, f.pass)
	if err != nil {
		f.status = "Error: Could not retrieve balance."
		return
	}
	f.status = "Your balance is " + balance.String() + "."
}

func (f *Flow) withdraw() error {
	balance, err := f.svc.Balance(f.user, f.pass)
	if err != nil {
		f.status = "Error: Could not retrieve balance."
		return nil
	}

	f.refresh("Making withdrawal.")
	f.con.WriteLine(`Please enter amount to withdraw (ex: 3500.00 or 3500), or "Q" to return.`)
	f.con.WriteLine("Current balance: " + balance.Fixed())
	input, err := f.con.ReadLine()
	if err != nil {
		return err
	}

	if strings.EqualFold(input, amountCancel) {
		f.status = "Withdrawal cancelled."
		return nil
	}
	amount, err := f.svc.Parse(input)
	if err != nil {
		f.status = "Error: Incorrectly formatted amount."
		return nil
	}
	if balance.Sub(amount).IsNegative() {
		f.status = "Error: Insufficient funds."
		return nil
	}

	f.refresh("Confirming withdrawal.")
	f.con.WriteLine("Confirm withdrawal amount of " + amount.String() + "?")
	ok, err := f.confirmYesNo()
	if err != nil {
		return err
	}
	if !ok {
		f.status = "Withdrawal cancelled."
		return nil
	}

	// The service re-checks funds inside the account's critical section.
	if _, err := f.svc.Withdraw(f.user, f.pass, amount); err != nil {
		if errors.Is(err, ledgers.ErrInsufficientFunds) {
			f.status = "Error: Insufficient funds."
		} else {
			f.status = "Error: Withdrawal failed."
		}
		return nil
	}
	f.status = amount.String() + " withdrawn."
	return nil
}

func (f *Flow) deposit() error {
	f.refresh("Making deposit.")
	f.con.WriteLine(`Please enter amount to deposit (ex: 3500.00 or 3500), or "Q" to return.`)
	input, err := f.con.ReadLine()
	if err != nil {
		return err
	}

	if strings.EqualFold(input, amountCancel) {
		f.status = "Deposit cancelled."
		return nil
	}
	amount, err := f.svc.Parse(input)
	if err != nil {
		f.status = "Error: Incorrectly formatted amount."
		return nil
	}

	f.refresh("Confirming deposit.")
	f.con.WriteLine("Confirm deposit amount of " + amount.String() + "?")
	ok, err := f.confirmYesNo()
	if err != nil {
		return err
	}
	if !ok {
		f.status = "Deposit cancelled."
		return nil
	}

	if _, err := f.svc.Deposit(f.user, f.pass, amount); err != nil {
		f.status = "Error: Deposit failed."
		return nil
	}
	f.status = amount.String() + " deposited."
	return nil
}

// confirmYesNo waits for a Y or N key, ignoring everything else.
func (f *Flow) confirmYesNo() (bool, error) {
	f.con.WriteLine("(Y) Yes  (N) No")
	for {
		key, err := f.con.ReadKey()
		if err != nil {
			return false, err
		}
		switch lower(key) {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}
	}
}

func (f *Flow) openHistory() {
	history, err := f.svc.History(f.user, f.pass)
	if err != nil {
		f.status = "Error: Could not retrieve history"
		return
	}
	f.pager = NewPager(history)
	f.state = ViewingHistory
}

func (f *Flow) stepViewingHistory() error {
	f.con.Clear()
	f.con.WriteMarkdown(renderer.HistoryScreen(f.user, f.pager.Page(), f.pager.MaxPage(), f.pager.Items()))
	key, err := f.con.ReadKey()
	if err != nil {
		return err
	}
	switch {
	case key == KeyLeft:
		f.pager.Older()
	case key == KeyRight:
		f.pager.Newer()
	case lower(key) == 'q':
		f.pager = nil
		f.status = "Done viewing transaction history."
		f.state = LoggedIn
	}
	return nil
}

func lower(k Key) rune { return unicode.ToLower(rune(k)) }

func isCancelWord(s string) bool {
	s = strings.ToLower(s)
	return s == cancelWord || s == `"`+cancelWord+`"`
}
