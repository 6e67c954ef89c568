package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production cost comes from config.
	hasher := NewBcryptHasher(bcrypt.MinCost)
	password := "averysecurepassword"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	verifier := NewBcryptVerifier()
	assert.NoError(t, verifier.Compare(hash, password))
	assert.Error(t, verifier.Compare(hash, "wrongpassword"))
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()

	// Zero cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(0)
	hash, err := hasher.Hash("averysecurepassword")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptVerifierEmptyInputs(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()
	assert.Error(t, verifier.Compare("", "password"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "password"))
}
