package crypto

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// RSAKeySize2048 is the smallest RSA modulus accepted for token signing
const RSAKeySize2048 = 2048

// RSAKeySize4096 is the largest RSA modulus offered by the CLI
const RSAKeySize4096 = 4096
