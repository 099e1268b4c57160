package config_test

import (
	"os"
	"testing"

	"github.com/quizdeck/admin-core/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "too-short")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should have panicked on a short key, but did not.")
		}
	}()

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "bearer-token-to-keep-secret"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("Decrypted text (%q) does not match original (%q)", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Encryption is not randomized (nonce). Ciphertexts should differ.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("Decrypted empty text is wrong: %q", decrypted)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := config.Decrypt("not-base64!!"); err == nil {
			t.Error("Decrypt should fail on malformed input")
		}
	})
}
