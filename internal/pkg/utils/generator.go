package utils

import (
	"chamber-portal-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const sessionIDClaim = "session_id"

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateSessionJWT signs a token that only carries the session id. The
// session itself lives in redis.
func GenerateSessionJWT(sessionID, secret string, expiry time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		sessionIDClaim: sessionID,
		"exp":          expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	sessionID, ok := claims[sessionIDClaim].(string)
	if !ok || sessionID == "" {
		return "", errors.New(constvars.ErrDevAuthInvalidSession)
	}
	return sessionID, nil
}

func GeneratePrescriptionObjectName(prescriptionID string) string {
	return fmt.Sprintf(constvars.MinioPrescriptionObjectFormat, prescriptionID, uuid.NewString())
}

// HashCacheKey builds a short stable hash of query parts for cache keys.
func HashCacheKey(parts ...string) string {
	return strconv.FormatUint(xxhash.Sum64String(strings.Join(parts, "\x1f")), 16)
}
