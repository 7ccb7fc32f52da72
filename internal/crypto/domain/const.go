package domain

// Algorithm represents the cryptographic algorithm used for encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// ensuring both confidentiality and authenticity of encrypted data. AEAD prevents both
// unauthorized reading and tampering with encrypted data.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KDFAlgorithm identifies the password-based key derivation function used to turn
// a low-entropy PIN into a 256-bit symmetric key.
type KDFAlgorithm string

const (
	// Argon2id is the memory-hard KDF. Work factor: DefaultArgon2Params.
	Argon2id KDFAlgorithm = "argon2id"

	// PBKDF2SHA512 is PBKDF2 with HMAC-SHA512. Work factor: DefaultPBKDF2Iterations.
	PBKDF2SHA512 KDFAlgorithm = "pbkdf2-sha512"
)

// KeySize is the size in bytes of every symmetric key in the hierarchy
// (master key, data key and PIN-derived key).
const KeySize = 32

// SaltSize is the size in bytes of the random salt fed to the KDF.
const SaltSize = 16

// Argon2Params holds the Argon2id cost parameters.
type Argon2Params struct {
	Time    uint32 // Number of passes over memory
	Memory  uint32 // Memory in KiB
	Threads uint8  // Degree of parallelism
}

// DefaultArgon2Params is the documented production work factor for Argon2id:
// 3 passes, 64 MiB, 4 lanes. One derivation takes tens of milliseconds.
var DefaultArgon2Params = Argon2Params{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 4,
}

// DefaultPBKDF2Iterations is the documented production iteration count for PBKDF2-HMAC-SHA512.
const DefaultPBKDF2Iterations = 210000

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// ParseKDFAlgorithm converts a configuration string into a KDFAlgorithm.
func ParseKDFAlgorithm(s string) (KDFAlgorithm, error) {
	switch KDFAlgorithm(s) {
	case Argon2id, PBKDF2SHA512:
		return KDFAlgorithm(s), nil
	default:
		return "", ErrUnsupportedKDF
	}
}
