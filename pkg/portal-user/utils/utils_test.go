package utils

import (
	"testing"
)

func TestSanitizeEmail(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		email := SanitizeEmail("\nTester@Example.COM")
		if email != "tester@example.com" {
			t.Errorf("unexpected email: %s", email)
		}

		email = SanitizeEmail("  \n tester@example.com \n\r")
		if email != "tester@example.com" {
			t.Errorf("unexpected email: %s", email)
		}
	})
}

func TestCheckEmailFormat(t *testing.T) {
	t.Run("with missing @", func(t *testing.T) {
		if CheckEmailFormat("t.t.com") {
			t.Error("should be false")
		}
	})
	t.Run("with missing domain", func(t *testing.T) {
		if CheckEmailFormat("t@t") {
			t.Error("should be false")
		}
	})
	t.Run("with valid addresses", func(t *testing.T) {
		if !CheckEmailFormat("t@t.com") {
			t.Error("should be true")
		}
		if !CheckEmailFormat("first.last+tag@example.co.in") {
			t.Error("should be true")
		}
	})
}

func TestBlurEmailAddress(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		email := BlurEmailAddress("a@test.de")
		if email != "a****@test.de" {
			t.Errorf("unexpected email: %s", email)
		}

		email = BlurEmailAddress("averylongaddress@test.de")
		if email != "a****@test.de" {
			t.Errorf("unexpected email: %s", email)
		}
	})
}

func TestCheckPasswordFormat(t *testing.T) {
	t.Run("with a too short password", func(t *testing.T) {
		if CheckPasswordFormat("1n34T6@") {
			t.Error("should be false")
		}
	})
	t.Run("with a too weak password", func(t *testing.T) {
		if CheckPasswordFormat("133426781334") {
			t.Error("should be false")
		}
		if CheckPasswordFormat("11111aaaa1111") {
			t.Error("should be false")
		}
	})
	t.Run("with good passwords", func(t *testing.T) {
		if !CheckPasswordFormat("1n34T678abcd") {
			t.Error("should be true")
		}
		if !CheckPasswordFormat("nnnnnnnnnnT@@") {
			t.Error("should be true")
		}
		if !CheckPasswordFormat("Tt1,.Lo%4abcd") {
			t.Error("should be true")
		}
	})
}

func TestGenerateUniqueTokenString(t *testing.T) {
	t.Run("generates distinct values", func(t *testing.T) {
		t1, err := GenerateUniqueTokenString()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		t2, err := GenerateUniqueTokenString()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if t1 == t2 {
			t.Error("tokens should differ")
		}
		if len(t1) < 40 {
			t.Errorf("token too short: %s", t1)
		}
	})
}
