package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	// HashPassword returns the stored form of password.
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error unless password matches hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum length.
	ValidatePasswordStrength(password string) error
}
