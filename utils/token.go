package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HS256 JWT carrying the user identity.
func IssueToken(secret string, userID uint, isStaff bool, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   float64(userID),
		"staff": isStaff,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAuthHeader validates a "Bearer <token>" Authorization header and
// returns the user id and staff flag.
func ParseAuthHeader(authHeader, secret string) (uint, bool, error) {
	tokenStr := strings.TrimSpace(authHeader)
	if tokenStr == "" {
		return 0, false, errors.New("missing authorization")
	}
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[7:])
	}
	if tokenStr == "" {
		return 0, false, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, false, err
	}
	if !tok.Valid {
		return 0, false, errors.New("invalid token")
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, errors.New("invalid claims")
	}

	sub, ok := mc["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, false, errors.New("invalid subject")
	}
	staff, _ := mc["staff"].(bool)
	return uint(sub), staff, nil
}
