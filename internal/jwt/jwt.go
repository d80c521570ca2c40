package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"holdem-table-server/internal/config"
)

// Issuer issues the JWT
const Issuer = "holdem-table-server"

var secret []byte

// LoadSecret will load the signing secret from the configuration.
// This method should only be called once.
func LoadSecret() {
	secret = []byte(config.Instance().JWT.Secret)
}

// Sign issues a reconnect token for the connection id
func Sign(connID string) (string, error) {
	if len(secret) == 0 {
		panic("LoadSecret() not called")
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  connID,
	})

	return token.SignedString(secret)
}

// ValidConnectionID will validate a signed token and return the connection
// id it was issued for
func ValidConnectionID(signedString string) (string, error) {
	if len(secret) == 0 {
		panic("LoadSecret() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	if claims.Issuer != Issuer {
		return "", errors.New("invalid issuer")
	}

	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}

	return claims.Subject, nil
}
