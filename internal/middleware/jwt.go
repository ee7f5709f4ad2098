package middleware

import (
	"crypto/rsa"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueToken mints an RS256 access token for the given user. The subject
// is the user id; jti makes every token unique.
func IssueToken(priv *rsa.PrivateKey, issuer string, userID int64, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iss": issuer,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(priv)
}

// ValidateToken checks the token's signature and standard claims and
// returns the authenticated user id. Expired tokens surface as
// jwt.ErrTokenExpired so callers can distinguish them.
func ValidateToken(tokenString, issuer string, publicKey *rsa.PublicKey) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return publicKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0, errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return 0, jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok {
		return 0, errors.New("missing issuer claim")
	}
	if iss != issuer {
		return 0, errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing subject claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid subject claim")
	}

	return userID, nil
}
