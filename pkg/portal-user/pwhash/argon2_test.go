package pwhash

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces an encoded argon2id hash", func(t *testing.T) {
		hash, err := HashPassword("T3stPassword,.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash format: %s", hash)
		}
	})

	t.Run("salts make hashes unique", func(t *testing.T) {
		h1, err := HashPassword("T3stPassword,.")
		if err != nil {
			t.Fatal(err)
		}
		h2, err := HashPassword("T3stPassword,.")
		if err != nil {
			t.Fatal(err)
		}
		if h1 == h2 {
			t.Error("hashes should differ")
		}
	})
}

func TestComparePasswordWithHash(t *testing.T) {
	hash, err := HashPassword("T3stPassword,.")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("with the matching password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "T3stPassword,.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !match {
			t.Error("should match")
		}
	})

	t.Run("with a wrong password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "notThePassword1.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match {
			t.Error("should not match")
		}
	})

	t.Run("with a malformed hash", func(t *testing.T) {
		if _, err := ComparePasswordWithHash("notAHash", "T3stPassword,."); err == nil {
			t.Error("should return an error")
		}
	})
}
