package provider

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// Secp256k1PrivKeySize is the raw private key length in bytes.
	Secp256k1PrivKeySize = 32
	// CompactSigSize is the length of a compact r||s ECDSA signature.
	CompactSigSize = 64
)

type secp256k1Point struct {
	pub *secp256k1.PublicKey
}

func (p secp256k1Point) Encode(compressed bool) []byte {
	if compressed {
		return p.pub.SerializeCompressed()
	}
	return p.pub.SerializeUncompressed()
}

func decodeSecp256k1Point(data []byte) (Point, error) {
	// btcec enforces curve membership and canonical field encodings for
	// both the compressed and uncompressed layouts.
	pub, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("secp256k1: %w", err)
	}
	return secp256k1Point{pub: pub}, nil
}

// secp256k1PrivKey loads raw private key bytes, rejecting wrong lengths and
// the zero scalar. Values are otherwise interpreted mod the group order, as
// the backing library does.
func secp256k1PrivKey(priv []byte) (*secp256k1.PrivateKey, error) {
	if len(priv) != Secp256k1PrivKeySize {
		return nil, fmt.Errorf("secp256k1: invalid private key length: expected %d bytes, got %d", Secp256k1PrivKeySize, len(priv))
	}
	key := secp256k1.PrivKeyFromBytes(priv)
	if key.Key.IsZero() {
		return nil, errors.New("secp256k1: private key is the zero scalar")
	}
	return key, nil
}

// ecdsaSign produces a deterministic (RFC 6979) ECDSA signature in compact
// 64-byte r||s form. The recoverable-signature path is used because it
// already emits fixed-length scalars; the recovery header byte is dropped.
func ecdsaSign(digest, priv []byte) ([]byte, error) {
	key, err := secp256k1PrivKey(priv)
	if err != nil {
		return nil, err
	}
	compact := btcecdsa.SignCompact(key, digest, true)
	if len(compact) != CompactSigSize+1 {
		return nil, fmt.Errorf("secp256k1: unexpected compact signature length %d", len(compact))
	}
	return compact[1:], nil
}

func ecdsaVerify(sig, digest, pub []byte) (bool, error) {
	if len(sig) != CompactSigSize {
		return false, fmt.Errorf("secp256k1: malformed compact signature: expected %d bytes, got %d", CompactSigSize, len(sig))
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		return false, errors.New("secp256k1: malformed compact signature: r overflows the group order")
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return false, errors.New("secp256k1: malformed compact signature: s overflows the group order")
	}
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false, fmt.Errorf("secp256k1: %w", err)
	}
	return secpecdsa.NewSignature(&r, &s).Verify(digest, pubKey), nil
}

// schnorrSign produces a BIP340 signature. The backing library requires a
// 32-byte digest and rejects anything else.
func schnorrSign(digest, priv []byte) ([]byte, error) {
	key, err := secp256k1PrivKey(priv)
	if err != nil {
		return nil, err
	}
	sig, err := schnorr.Sign(key, digest)
	if err != nil {
		return nil, fmt.Errorf("secp256k1: %w", err)
	}
	return sig.Serialize(), nil
}

func schnorrVerify(sigBytes, digest, pub []byte) (bool, error) {
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("secp256k1: %w", err)
	}
	// x-only keys are point-validated here, at verification time; the suite
	// layer's key normalization deliberately does not.
	pubKey, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return false, fmt.Errorf("secp256k1: %w", err)
	}
	return sig.Verify(digest, pubKey), nil
}
