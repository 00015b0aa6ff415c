package ecsuite

import "encoding/hex"

// NormalizedPublicKey is the result of validating a public key: the
// hex-encoded key in the suite's output encoding, and the tag naming that
// encoding.
type NormalizedPublicKey struct {
	Hex    string
	Format PublicKeyFormat
}

// Suite bundles the validation, signing, and verification behavior for one
// fixed (curve, scheme) pair. Implementations are immutable and stateless.
type Suite interface {
	// ValidateAndNormalizePublicKey checks pubKeyHex against the suite's
	// accepted encodings and returns the key re-encoded in outputFormat.
	// Suites with a single fixed encoding accept the outputFormat argument
	// but ignore it and return the input unchanged. Failures are always
	// *ValidationError.
	ValidateAndNormalizePublicKey(pubKeyHex string, outputFormat PublicKeyFormat) (NormalizedPublicKey, error)

	// Sign signs a precomputed message digest with the given private key
	// and returns the hex-encoded signature in the scheme's fixed-length
	// encoding. The suite never hashes; digestHex must already be a
	// digest. Private-key validation is left to the primitive provider,
	// whose errors surface unmodified.
	Sign(privKeyHex, digestHex string) (string, error)

	// Verify reports whether sigHex is a valid signature over digestHex by
	// pubKeyHex. A well-formed but non-matching signature returns false
	// with a nil error; structurally malformed inputs surface the
	// primitive provider's native error. The public key must already be in
	// the encoding the scheme expects (compressed for ECDSA, x-only for
	// Schnorr); Verify does not re-normalize it.
	Verify(sigHex, digestHex, pubKeyHex string) (bool, error)
}

// The three suites are stateless singletons; GetSuite hands out the same
// value for every call.
var (
	secp256k1ECDSA   ecdsaSuite
	secp256k1Schnorr schnorrSuite
	ed25519EdDSA     eddsaSuite
)

// GetSuite resolves a (curve, scheme) pair to its Suite. The mapping is
// fixed at build time: ECDSA and Schnorr on secp256k1, EdDSA on ed25519.
// Every other pair fails with a *ValidationError naming both tags.
func GetSuite(curve Curve, scheme Scheme) (Suite, error) {
	switch {
	case curve == CurveSecp256k1 && scheme == SchemeECDSA:
		return secp256k1ECDSA, nil
	case curve == CurveSecp256k1 && scheme == SchemeSchnorr:
		return secp256k1Schnorr, nil
	case curve == CurveEd25519 && scheme == SchemeEdDSA:
		return ed25519EdDSA, nil
	}
	return nil, validationErrorf("unsupported suite: scheme %s is not available on curve %s", scheme, curve)
}

// decodeKeyHex decodes a hex public key for validation, converting decode
// failures into the validation error taxonomy.
func decodeKeyHex(pubKeyHex string) ([]byte, error) {
	raw, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, validationErrorf("public key is not a valid hex string: %v", err)
	}
	return raw, nil
}
