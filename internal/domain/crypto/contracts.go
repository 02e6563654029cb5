package crypto

import (
	"crypto/rsa"
)

// AESProcessor handles AES-GCM symmetric encryption.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt seals data with key. The nonce is prepended to the ciphertext.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt opens ciphertext produced by Encrypt.
	Decrypt(ciphertext, key []byte) ([]byte, error)

	// DeriveKey derives a keySize subkey of masterKey bound to purpose (HKDF-SHA256).
	DeriveKey(masterKey []byte, purpose string, keySize int) ([]byte, error)
}

// RSAProcessor handles the RSA keys used to sign access tokens.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Sign creates a PKCS#1 v1.5 SHA-256 signature of data.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify checks a signature created by Sign.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// SavePrivateKeyToFile writes the private key as PKCS#1 PEM.
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile writes the public key as PKIX PEM.
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error

	// ReadPrivateKey reads a PKCS#1 or PKCS#8 PEM private key.
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads a PKCS#1 or PKIX PEM public key.
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)
}
