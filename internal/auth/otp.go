package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OTP verification is stateless: the server hands the client a signed token
// carrying the hash of the code and its expiry, and verifies the code
// against that token later. Nothing is held in process memory between the
// two calls.

// OTPClaims carries the hashed one-time code inside a signed token.
type OTPClaims struct {
	UserID   uint   `json:"user_id"`
	CodeHash string `json:"code_hash"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateOTP creates a 6-digit code and a signed token binding it to the
// user for the given duration. The code goes to the user out of band; the
// token goes back to the client.
func GenerateOTP(userID uint, purpose string, ttl time.Duration) (code string, token string, err error) {
	if len(jwtSecret) == 0 {
		return "", "", fmt.Errorf("JWT secret not initialized")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate code: %w", err)
	}
	code = fmt.Sprintf("%06d", n.Int64())

	claims := &OTPClaims{
		UserID:   userID,
		CodeHash: hashOTP(code),
		Purpose:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign OTP token: %w", err)
	}

	return code, token, nil
}

// VerifyOTP checks a submitted code against its token and returns the user
// the token was issued for.
func VerifyOTP(tokenString, code, purpose string) (uint, error) {
	if len(jwtSecret) == 0 {
		return 0, fmt.Errorf("JWT secret not initialized")
	}

	claims := &OTPClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired OTP token")
	}

	if claims.Purpose != purpose {
		return 0, fmt.Errorf("OTP token purpose mismatch")
	}

	if subtle.ConstantTimeCompare([]byte(claims.CodeHash), []byte(hashOTP(code))) != 1 {
		return 0, fmt.Errorf("incorrect code")
	}

	return claims.UserID, nil
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
