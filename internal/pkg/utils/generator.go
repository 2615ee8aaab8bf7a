package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// GenerateConfirmationCode produces a human-readable booking code:
// category prefix plus a 6-digit number in [100000, 999999].
func GenerateConfirmationCode(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%06d", prefix, n.Int64()+100000), nil
}

func GenerateRequestID() string {
	return uuid.NewString()
}
