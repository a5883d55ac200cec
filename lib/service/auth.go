package service

import (
	"time"

	"github.com/getAlby/nftmarket.go/lib/security"
	"github.com/getAlby/nftmarket.go/lib/tokens"
)

// GenerateToken verifies a signed login challenge and issues an access token
// for the address of the signer.
func (svc *MarketService) GenerateToken(pubKeyHex, signatureHex string, timestamp int64) (address, accessToken string, err error) {
	maxSkew := time.Duration(svc.Config.AuthMaxClockSkew) * time.Second
	address, err = security.VerifyLogin(pubKeyHex, signatureHex, timestamp, time.Now(), maxSkew)
	if err != nil {
		return "", "", err
	}
	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, address)
	if err != nil {
		return "", "", err
	}
	return address, accessToken, nil
}
