package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAESEncryptor(t *testing.T) {
	encryptor, err := NewAESEncryptor("12345678901234567890123456789012")
	require.NoError(t, err)

	plaintext := "买家承认收货后申请仅退款，聊天记录见截图"

	ciphertext, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)
	require.NotEqual(t, plaintext, ciphertext)

	decrypted, err := encryptor.Decrypt(ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestAESEncryptorEmptyString(t *testing.T) {
	encryptor, err := NewAESEncryptor("1234567890123456")
	require.NoError(t, err)

	ciphertext, err := encryptor.Encrypt("")
	require.NoError(t, err)
	require.Empty(t, ciphertext)

	plaintext, err := encryptor.Decrypt("")
	require.NoError(t, err)
	require.Empty(t, plaintext)
}

func TestAESEncryptorInvalidKey(t *testing.T) {
	_, err := NewAESEncryptor("short")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestSensitiveFieldHelpers(t *testing.T) {
	// nil encryptor 透传
	out, err := EncryptSensitiveField(nil, "plain")
	require.NoError(t, err)
	require.Equal(t, "plain", out)

	out, err = DecryptSensitiveField(nil, "plain")
	require.NoError(t, err)
	require.Equal(t, "plain", out)
}

func TestHashPassword(t *testing.T) {
	password := RandomString(8)

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	err = CheckPassword(password, hashed)
	require.NoError(t, err)

	err = CheckPassword("wrongpassword", hashed)
	require.Error(t, err)

	// 同一密码两次哈希结果不同（随机盐）
	hashed2, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hashed, hashed2)
}
