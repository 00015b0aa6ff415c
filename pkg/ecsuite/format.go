package ecsuite

// PublicKeyFormat describes the byte layout of a public key encoding. It
// says nothing about validity; validation is the suite's job.
type PublicKeyFormat int

const (
	// FormatDefault lets the suite pick its canonical output format.
	// For the ECDSA suite this means compressed.
	FormatDefault PublicKeyFormat = iota
	// FormatCompressed is the 33-byte secp256k1 encoding (02/03 prefix
	// plus x-coordinate), or the fixed 32-byte Ed25519 encoding.
	FormatCompressed
	// FormatUncompressed is the 65-byte secp256k1 encoding (04 prefix
	// plus both coordinates).
	FormatUncompressed
	// FormatSchnorr is the 32-byte x-only encoding used by BIP340.
	FormatSchnorr
)

// String returns a human-readable name for the format.
func (f PublicKeyFormat) String() string {
	switch f {
	case FormatCompressed:
		return "compressed"
	case FormatUncompressed:
		return "uncompressed"
	case FormatSchnorr:
		return "schnorr"
	default:
		return "default"
	}
}
