package ecsuite

// Curve identifies an elliptic curve supported by the library.
type Curve int

const (
	// CurveUnknown is the zero value and matches no suite.
	CurveUnknown Curve = iota
	// CurveSecp256k1 is the short-Weierstrass curve used by ECDSA and
	// BIP340 Schnorr signatures. Points have compressed (33-byte) and
	// uncompressed (65-byte) encodings.
	CurveSecp256k1
	// CurveEd25519 is the twisted-Edwards curve used by Ed25519. Points
	// have a single fixed 32-byte encoding.
	CurveEd25519
)

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	switch c {
	case CurveSecp256k1:
		return "secp256k1"
	case CurveEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// Scheme identifies a signature scheme layered on a curve.
type Scheme int

const (
	// SchemeUnknown is the zero value and matches no suite.
	SchemeUnknown Scheme = iota
	// SchemeECDSA is standard ECDSA with compact 64-byte signatures.
	SchemeECDSA
	// SchemeSchnorr is BIP340 Schnorr with x-only 32-byte public keys.
	SchemeSchnorr
	// SchemeEdDSA is Ed25519, the Edwards-native scheme.
	SchemeEdDSA
)

// String returns a human-readable name for the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeECDSA:
		return "ecdsa"
	case SchemeSchnorr:
		return "schnorr"
	case SchemeEdDSA:
		return "eddsa"
	default:
		return "unknown"
	}
}
