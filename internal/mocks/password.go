package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match
	ShouldSucceed bool
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows test cases to mock the Hash behavior
	HashFn func(password string) (string, error)

	// Default values used when HashFn isn't defined
	Hashed string
	Err    error
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.Hashed != "" {
		return m.Hashed, m.Err
	}
	return "hashed:" + password, m.Err
}
