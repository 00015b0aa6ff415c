package provider

import "fmt"

// Curve selects the primitive backend for point operations.
type Curve int

const (
	CurveUnknown Curve = iota
	CurveSecp256k1
	CurveEd25519
)

// Scheme selects the signing and verification routines.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeECDSA
	SchemeSchnorr
	SchemeEdDSA
)

// Point is a validated curve point, ready for re-serialization.
type Point interface {
	// Encode serializes the point. The compressed flag is honored for
	// secp256k1; Edwards points have a single fixed encoding and ignore it.
	Encode(compressed bool) []byte
}

// DecodePoint parses a byte encoding into a validated point on the given
// curve. Points not on the curve and malformed encodings are rejected.
func DecodePoint(curve Curve, data []byte) (Point, error) {
	switch curve {
	case CurveSecp256k1:
		return decodeSecp256k1Point(data)
	case CurveEd25519:
		return decodeEdwardsPoint(data)
	default:
		return nil, fmt.Errorf("provider: unsupported curve %d", curve)
	}
}

// Sign signs a precomputed digest with the raw private key bytes using the
// given scheme. The signature is returned in the scheme's fixed-length
// encoding: 64-byte compact r||s for ECDSA, 64 bytes for BIP340 and Ed25519.
func Sign(curve Curve, scheme Scheme, digest, priv []byte) ([]byte, error) {
	switch {
	case curve == CurveSecp256k1 && scheme == SchemeECDSA:
		return ecdsaSign(digest, priv)
	case curve == CurveSecp256k1 && scheme == SchemeSchnorr:
		return schnorrSign(digest, priv)
	case curve == CurveEd25519 && scheme == SchemeEdDSA:
		return ed25519Sign(digest, priv)
	default:
		return nil, fmt.Errorf("provider: unsupported scheme %d on curve %d", scheme, curve)
	}
}

// Verify reports whether sig is a valid signature over digest by pub. A
// structurally malformed signature or public key is an error; a well-formed
// signature that simply does not match returns false with a nil error.
func Verify(curve Curve, scheme Scheme, sig, digest, pub []byte) (bool, error) {
	switch {
	case curve == CurveSecp256k1 && scheme == SchemeECDSA:
		return ecdsaVerify(sig, digest, pub)
	case curve == CurveSecp256k1 && scheme == SchemeSchnorr:
		return schnorrVerify(sig, digest, pub)
	case curve == CurveEd25519 && scheme == SchemeEdDSA:
		return ed25519Verify(sig, digest, pub)
	default:
		return false, fmt.Errorf("provider: unsupported scheme %d on curve %d", scheme, curve)
	}
}
