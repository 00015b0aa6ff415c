// Command ecsuite-go runs a sign/verify round trip through every supported
// suite with throwaway keys. It doubles as a smoke test for the library and
// as an example of instrumenting a signing flow without logging secrets.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite"
	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite/logging"
)

func main() {
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx := context.Background()

	digest := sha256.Sum256([]byte("ecsuite-go demo message"))
	digestHex := hex.EncodeToString(digest[:])

	if err := run(ctx, logger, digestHex); err != nil {
		logger.Error(ctx, "demo failed", "err", err)
		os.Exit(1)
	}
}

type demoKey struct {
	curve      ecsuite.Curve
	scheme     ecsuite.Scheme
	privKeyHex string
	pubKeyHex  string
}

func run(ctx context.Context, logger logging.Logger, digestHex string) error {
	keys, err := generateKeys()
	if err != nil {
		return err
	}

	for _, k := range keys {
		suite, err := ecsuite.GetSuite(k.curve, k.scheme)
		if err != nil {
			return err
		}

		normalized, err := suite.ValidateAndNormalizePublicKey(k.pubKeyHex, ecsuite.FormatDefault)
		if err != nil {
			return fmt.Errorf("normalize public key: %w", err)
		}

		sigHex, err := suite.Sign(k.privKeyHex, digestHex)
		if err != nil {
			return fmt.Errorf("sign digest: %w", err)
		}

		ok, err := suite.Verify(sigHex, digestHex, normalized.Hex)
		if err != nil {
			return fmt.Errorf("verify signature: %w", err)
		}

		logger.Info(ctx, "sign/verify round trip",
			logging.Suite(k.curve, k.scheme),
			logging.Redacted("private_key"),
			"public_key", normalized.Hex,
			"public_key_format", normalized.Format.String(),
			"signature", sigHex,
			"verified", ok,
		)
	}
	return nil
}

// generateKeys creates one throwaway keypair per suite, already encoded in
// the form each scheme expects: compressed for ECDSA, x-only for Schnorr,
// and the seed/fixed encoding pair for Ed25519.
func generateKeys() ([]demoKey, error) {
	secpKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}

	secpPrivHex := hex.EncodeToString(secpKey.Serialize())
	return []demoKey{
		{
			curve:      ecsuite.CurveSecp256k1,
			scheme:     ecsuite.SchemeECDSA,
			privKeyHex: secpPrivHex,
			pubKeyHex:  hex.EncodeToString(secpKey.PubKey().SerializeCompressed()),
		},
		{
			curve:      ecsuite.CurveSecp256k1,
			scheme:     ecsuite.SchemeSchnorr,
			privKeyHex: secpPrivHex,
			pubKeyHex:  hex.EncodeToString(schnorr.SerializePubKey(secpKey.PubKey())),
		},
		{
			curve:      ecsuite.CurveEd25519,
			scheme:     ecsuite.SchemeEdDSA,
			privKeyHex: hex.EncodeToString(edPriv.Seed()),
			pubKeyHex:  hex.EncodeToString(edPub),
		},
	}, nil
}
