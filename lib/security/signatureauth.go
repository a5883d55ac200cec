package security

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	LOGIN_MESSAGE = "sign in into nftmarket"
)

var (
	ErrBadSignature = errors.New("bad signature")
	ErrStaleLogin   = errors.New("login timestamp outside of the allowed window")
)

// LoginChallenge is the message a client signs to log in at timestamp (unix seconds)
func LoginChallenge(timestamp int64) []byte {
	return []byte(fmt.Sprintf("%s:%d", LOGIN_MESSAGE, timestamp))
}

// Address is the hex encoded compressed public key, the identity of a marketplace user
func Address(pub *btcec.PublicKey) string {
	return hex.EncodeToString(pub.SerializeCompressed())
}

// SignLogin returns the hex encoded DER signature of the login challenge
func SignLogin(priv *btcec.PrivateKey, timestamp int64) string {
	hash := sha256.Sum256(LoginChallenge(timestamp))
	return hex.EncodeToString(ecdsa.Sign(priv, hash[:]).Serialize())
}

// VerifyLogin checks a signed login challenge and returns the address of the signer
func VerifyLogin(pubKeyHex, signatureHex string, timestamp int64, now time.Time, maxSkew time.Duration) (string, error) {
	signedAt := time.Unix(timestamp, 0)
	if signedAt.Before(now.Add(-maxSkew)) || signedAt.After(now.Add(maxSkew)) {
		return "", ErrStaleLogin
	}
	pubBytes, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", fmt.Errorf("unable to decode pubkey: %w", err)
	}
	pub, err := btcec.ParsePubKey(pubBytes)
	if err != nil {
		return "", fmt.Errorf("unable to parse pubkey: %w", err)
	}
	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return "", fmt.Errorf("unable to decode signature: %w", err)
	}
	signature, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return "", fmt.Errorf("unable to parse signature: %w", err)
	}
	hash := sha256.Sum256(LoginChallenge(timestamp))
	if !signature.Verify(hash[:], pub) {
		return "", ErrBadSignature
	}
	return Address(pub), nil
}
