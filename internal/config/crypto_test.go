package config_test

import (
	"testing"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "01234567890123456789012345678901"

func TestNewCipher(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		_, err := config.NewCipher("short")
		assert.ErrorIs(t, err, config.ErrInvalidCryptoKey)
	})

	t.Run("ValidKey", func(t *testing.T) {
		c, err := config.NewCipher(testKey)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	c, err := config.NewCipher(testKey)
	require.NoError(t, err)

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "AIza-test-key"

		ciphertext, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)

		again, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, ciphertext, again, "nonce must differ between calls")
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := c.Encrypt("")
		require.NoError(t, err)

		decrypted, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("ShortCiphertext", func(t *testing.T) {
		_, err := c.Decrypt("AAAA")
		assert.ErrorIs(t, err, config.ErrShortCiphertext)
	})

	t.Run("WrongKey", func(t *testing.T) {
		ciphertext, err := c.Encrypt("secret")
		require.NoError(t, err)

		other, err := config.NewCipher("abcdefghijabcdefghijabcdefghij12")
		require.NoError(t, err)
		_, err = other.Decrypt(ciphertext)
		assert.Error(t, err)
	})
}
