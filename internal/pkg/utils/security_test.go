package utils

import (
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash and Verify", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash, "hash should not be the plaintext")

		assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	})

	t.Run("Wrong Password", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		assert.NoError(t, err)

		assert.False(t, CheckPasswordHash("wrong password", hash))
	})

	t.Run("Garbage Hash", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	})
}

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Roundtrip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 60)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		sessionID, err := ParseSessionJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 60)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, "another-secret")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "error should be a CustomError")
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, -1)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Not a JWT", func(t *testing.T) {
		_, err := ParseSessionJWT("definitely-not-a-jwt", secret)
		assert.Error(t, err)
	})
}
