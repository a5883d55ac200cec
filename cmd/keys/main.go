package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/getAlby/nftmarket.go/lib/security"
)

// prints a new key pair, or with PRIVATE_KEY set the signed body for POST /auth
func main() {
	privHex := os.Getenv("PRIVATE_KEY")
	if privHex == "" {
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("private key:", hex.EncodeToString(priv.Serialize()))
		fmt.Println("address:    ", security.Address(priv.PubKey()))
		return
	}

	privBytes, err := hex.DecodeString(privHex)
	if err != nil {
		log.Fatalf("PRIVATE_KEY is not hex: %v", err)
	}
	priv, _ := btcec.PrivKeyFromBytes(privBytes)
	timestamp := time.Now().Unix()
	body, err := json.MarshalIndent(map[string]interface{}{
		"pubkey":    security.Address(priv.PubKey()),
		"signature": security.SignLogin(priv, timestamp),
		"timestamp": timestamp,
	}, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(body))
}
