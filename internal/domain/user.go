package domain

// User is a storefront account. PasswordHash is a bcrypt hash and never
// leaves the service layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Public returns a copy of the user without the credential.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
