package jwthandling

import (
	"testing"
	"time"
)

func TestGenerateNewPortalUserToken(t *testing.T) {
	t.Run("with valid inputs", func(t *testing.T) {
		token, err := GenerateNewPortalUserToken(
			time.Minute,
			"user-1",
			"instance-1",
			"session-1",
			true,
			map[string]string{"rememberMe": "true"},
			"testKey",
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) < 10 {
			t.Errorf("unexpected token: %s", token)
		}
	})
}

func TestValidatePortalUserToken(t *testing.T) {
	token, err := GenerateNewPortalUserToken(time.Minute, "user-1", "instance-1", "session-1", false, nil, "testKey")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("with a valid token", func(t *testing.T) {
		claims, valid, err := ValidatePortalUserToken(token, "testKey")
		if err != nil || !valid {
			t.Fatalf("should be valid: %v", err)
		}
		if claims.Subject != "user-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.InstanceID != "instance-1" {
			t.Errorf("unexpected instance: %s", claims.InstanceID)
		}
		if claims.SessionID != "session-1" {
			t.Errorf("unexpected session: %s", claims.SessionID)
		}
		if claims.IsAdmin {
			t.Error("should not be admin")
		}
	})

	t.Run("with a wrong key", func(t *testing.T) {
		_, valid, err := ValidatePortalUserToken(token, "wrongKey")
		if err == nil || valid {
			t.Error("should not be valid")
		}
	})

	t.Run("with an expired token", func(t *testing.T) {
		expired, err := GenerateNewPortalUserToken(-time.Minute, "user-1", "instance-1", "session-1", false, nil, "testKey")
		if err != nil {
			t.Fatal(err)
		}
		_, valid, err := ValidatePortalUserToken(expired, "testKey")
		if err == nil || valid {
			t.Error("should not be valid")
		}
	})

	t.Run("with a tampered token", func(t *testing.T) {
		_, valid, err := ValidatePortalUserToken(token+"x", "testKey")
		if err == nil || valid {
			t.Error("should not be valid")
		}
	})
}
