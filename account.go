package ledgers

import "slices"

// Account is one user's record: a name, a credential, and the append-only
// list of transactions in insertion order.
//
// The balance is not a field. It is always derived by folding the signed
// transaction amounts, so the record cannot drift from its own ledger.
type Account struct {
	name         string
	credential   Credential
	transactions []Transaction
}

// NewAccount creates an account with zero transactions.
func NewAccount(name string, credential Credential) *Account {
	return &Account{name: name, credential: credential}
}

// Name returns the account's username.
func (a *Account) Name() string { return a.name }

// Credential returns the account's stored credential.
func (a *Account) Credential() Credential { return a.credential }

// Append records a transaction at the end of the account's ledger.
func (a *Account) Append(tx Transaction) {
	a.transactions = append(a.transactions, tx)
}

// Balance folds the signed transaction amounts. An account with no
// transactions has a zero balance.
func (a *Account) Balance() Money {
	var sum Money
	for _, tx := range a.transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// Transactions returns the account's transactions in insertion order.
func (a *Account) Transactions() []Transaction {
	return slices.Clone(a.transactions)
}

// History returns the account's transactions newest-first.
func (a *Account) History() []Transaction {
	history := slices.Clone(a.transactions)
	slices.Reverse(history)
	return history
}

// clone deep-copies the account so the store never leaks its own record.
func (a *Account) clone() *Account {
	return &Account{
		name:         a.name,
		credential:   a.credential,
		transactions: slices.Clone(a.transactions),
	}
}
