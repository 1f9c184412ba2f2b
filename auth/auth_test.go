// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("user123", "alice", "test-secret")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	if !strings.Contains(token, ".") {
		t.Fatalf("token %q missing payload.signature separator", token)
	}

	claims, err := ValidateSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UserID != "user123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user123")
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Expires <= time.Now().Unix() {
		t.Error("token expiry should be in the future")
	}
}

func TestValidateSessionToken_Invalid(t *testing.T) {
	valid, _ := GenerateSessionToken("user123", "alice", "test-secret")

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"empty token", "", "test-secret", ErrInvalidToken},
		{"no separator", "notAToken", "test-secret", ErrInvalidToken},
		{"garbage payload", "!!!.signature", "test-secret", ErrInvalidToken},
		{"wrong secret", valid, "other-secret", ErrInvalidToken},
		{"tampered signature", strings.Split(valid, ".")[0] + ".AAAA", "test-secret", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSessionToken(tt.token, tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSessionToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSessionToken_TamperedClaims(t *testing.T) {
	token, _ := GenerateSessionToken("user123", "alice", "test-secret")
	payload, sig, _ := strings.Cut(token, ".")

	// Flip a byte in the payload while keeping the original signature
	mutated := []byte(payload)
	if mutated[0] == 'A' {
		mutated[0] = 'B'
	} else {
		mutated[0] = 'A'
	}

	_, err := ValidateSessionToken(string(mutated)+"."+sig, "test-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for tampered claims, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Fatalf("hash %q missing salt$digest separator", hash)
	}

	if !CheckPassword("hunter2", hash) {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword("hunter3", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("hunter2", "not-a-valid-hash") {
		t.Error("CheckPassword() accepted a malformed stored hash")
	}

	// Same password hashes differently due to random salt
	hash2, _ := HashPassword("hunter2")
	if hash == hash2 {
		t.Error("HashPassword() produced identical hashes (salt not random)")
	}
}
