package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	CartKeyPattern          = "cart:%s"                 // cart:userID
	CheckoutFenceKeyPattern = "checkout:inProgress:%s"  // checkout:inProgress:userID
	ProfileKeyPattern       = "session:profile:%s"      // session:profile:tokenHash
)

func CartKeyBuilder(userID string) string {
	return fmt.Sprintf(CartKeyPattern, userID)
}

func CheckoutFenceKeyBuilder(userID string) string {
	return fmt.Sprintf(CheckoutFenceKeyPattern, userID)
}

// ProfileKeyBuilder hashes the bearer token so the raw credential never
// lands in Redis keyspace dumps.
func ProfileKeyBuilder(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf(ProfileKeyPattern, hex.EncodeToString(sum[:]))
}
