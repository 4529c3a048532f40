package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token enocodes
type PortalUserClaims struct {
	InstanceID string            `json:"instance_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	IsAdmin    bool              `json:"is_admin,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewPortalUserToken(
	expiresIn time.Duration,
	id string,
	instanceID string,
	sessionID string,
	isAdmin bool,
	payload map[string]string,
	secretKey string,
) (tokenString string, err error) {
	claims := PortalUserClaims{
		instanceID,
		sessionID,
		isAdmin,
		payload,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   id,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidatePortalUserToken(tokenString string, secretKey string) (claims *PortalUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &PortalUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*PortalUserClaims)
	valid = valid && token.Valid
	return
}
