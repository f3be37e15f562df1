package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Unambiguous alphabet: no 0/O or 1/I.
const roomCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateRoomCode creates a random 8-character room code
func GenerateRoomCode() (string, error) {
	code := make([]byte, 8)
	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		code[i] = roomCodeAlphabet[idx.Int64()]
	}
	return string(code), nil
}
