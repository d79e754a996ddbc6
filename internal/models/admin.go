package models

// Admin is a back-office user allowed to manage the scenario catalog and
// inspect players. Passwords are stored as bcrypt hashes.
type Admin struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash []byte `db:"password_hash" json:"-"`
}
