package ecsuite

import (
	"encoding/hex"

	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite/internal/provider"
)

// ecdsaSuite is the secp256k1/ECDSA suite. Public keys may arrive
// compressed (33 bytes, 02/03 prefix), uncompressed (65 bytes, 04 prefix),
// or as a bare 64-byte uncompressed body without its 04 prefix; the key is
// always point-validated and re-encoded to the requested output format.
// Signatures are compact 64-byte r||s.
type ecdsaSuite struct{}

var _ Suite = ecdsaSuite{}

func (ecdsaSuite) ValidateAndNormalizePublicKey(pubKeyHex string, outputFormat PublicKeyFormat) (NormalizedPublicKey, error) {
	raw, err := decodeKeyHex(pubKeyHex)
	if err != nil {
		return NormalizedPublicKey{}, err
	}

	// Input layout is detected from length and prefix byte. A bare 64-byte
	// body is treated as an uncompressed key missing its 04 prefix and
	// reconstructed before parsing.
	switch {
	case len(raw) == 64:
		raw = append([]byte{0x04}, raw...)
	case len(raw) == 33 && (raw[0] == 0x02 || raw[0] == 0x03):
	case len(raw) == 65 && raw[0] == 0x04:
	default:
		return NormalizedPublicKey{}, validationErrorf("invalid format, expected 33 or 65 bytes")
	}

	point, err := provider.DecodePoint(provider.CurveSecp256k1, raw)
	if err != nil {
		return NormalizedPublicKey{}, validationErrorf("not a valid point on the curve")
	}

	// Output format is independent of the input format.
	format := FormatCompressed
	if outputFormat == FormatUncompressed {
		format = FormatUncompressed
	}
	return NormalizedPublicKey{
		Hex:    hex.EncodeToString(point.Encode(format == FormatCompressed)),
		Format: format,
	}, nil
}

func (ecdsaSuite) Sign(privKeyHex, digestHex string) (string, error) {
	priv, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return "", err
	}
	defer ZeroizeBytes(priv)
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return "", err
	}
	sig, err := provider.Sign(provider.CurveSecp256k1, provider.SchemeECDSA, digest, priv)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}

func (ecdsaSuite) Verify(sigHex, digestHex, pubKeyHex string) (bool, error) {
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return false, err
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, err
	}
	pub, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return false, err
	}
	return provider.Verify(provider.CurveSecp256k1, provider.SchemeECDSA, sig, digest, pub)
}
