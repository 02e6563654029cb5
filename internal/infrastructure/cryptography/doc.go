// Package cryptography implements the AES-GCM and RSA processors declared in
// the crypto domain package.
package cryptography
