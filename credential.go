package ledgers

import "golang.org/x/crypto/bcrypt"

// Credential is a stored bcrypt hash of an account password. The original
// ledger kept passwords in the clear; the authentication contract is the
// same (exact match against the stored representation), only the
// representation changed.
type Credential struct {
	hash []byte
}

// NewCredential hashes a password at the given bcrypt cost.
func NewCredential(password string, cost int) (Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{hash: hash}, nil
}

// Match reports whether the password matches the stored credential.
func (c Credential) Match(password string) bool {
	return bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
}
