// Package crypto declares the cryptographic primitives the framework relies
// on: AES-GCM sealing for data protection and RSA key handling for token
// signing.
package crypto
