package jwt

import (
	"errors"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, TokenAccess, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseToken(secret, TokenAccess, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.MemberID != 42 {
		t.Errorf("member_id = %d, want 42", claims.MemberID)
	}
}

func TestParseWrongType(t *testing.T) {
	token, _ := GenerateToken(secret, 42, "refresh", time.Minute)
	if _, err := ParseToken(secret, TokenAccess, token); !errors.Is(err, ErrTokenType) {
		t.Fatalf("err = %v, want ErrTokenType", err)
	}
}

func TestParseRejects(t *testing.T) {
	expired, _ := GenerateToken(secret, 42, TokenAccess, -time.Minute)
	anonymous, _ := GenerateToken(secret, 0, TokenAccess, time.Minute)
	good, _ := GenerateToken(secret, 42, TokenAccess, time.Minute)

	cases := []struct {
		name   string
		secret []byte
		token  string
	}{
		{"expired", secret, expired},
		{"zero member", secret, anonymous},
		{"wrong secret", []byte("other"), good},
		{"malformed", secret, "not-a-token"},
	}
	for _, c := range cases {
		if _, err := ParseToken(c.secret, TokenAccess, c.token); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestEmailVerifiedClaim(t *testing.T) {
	plain, _ := GenerateToken(secret, 42, TokenAccess, time.Minute)
	verified, _ := GenerateToken(secret, 42, TokenAccess, time.Minute, WithEmailVerified())

	for token, want := range map[string]bool{plain: false, verified: true} {
		claims, err := ParseToken(secret, TokenAccess, token)
		if err != nil {
			t.Fatal(err)
		}
		if claims.EmailVerified != want {
			t.Errorf("email_verified = %v, want %v", claims.EmailVerified, want)
		}
	}
}
