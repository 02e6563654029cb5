package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	cryptoDomain "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/crypto"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"golang.org/x/crypto/hkdf"
)

// aesProcessor implements the AESProcessor interface with AES-GCM
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

func validKeySize(size int) bool {
	switch size {
	case cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256:
		return true
	default:
		return false
	}
}

// GenerateKey generates a random AES key of the given size in bytes
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if !validKeySize(keySize) {
		return nil, fmt.Errorf("invalid AES key size %d: must be 16, 24 or 32 bytes", keySize)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Debug("Generated AES key")
	return key, nil
}

// Encrypt seals data with AES-GCM and prepends the random nonce
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// Decrypt opens AES-GCM ciphertext produced by Encrypt
func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize()+gcm.Overhead() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	return plain, nil
}

// DeriveKey derives a purpose bound subkey with HKDF-SHA256
func (a *aesProcessor) DeriveKey(masterKey []byte, purpose string, keySize int) ([]byte, error) {
	if len(masterKey) == 0 {
		return nil, errors.New("master key cannot be empty")
	}
	if !validKeySize(keySize) {
		return nil, fmt.Errorf("invalid AES key size %d: must be 16, 24 or 32 bytes", keySize)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
