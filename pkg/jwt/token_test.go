package jwtPkg

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	token, exp, err := SignWithSecret("s3cret", map[string]interface{}{
		"id":       "admin",
		"username": "panitia",
		"role":     "admin",
	}, time.Hour)
	if err != nil {
		t.Fatalf("SignWithSecret() error = %v", err)
	}
	if exp <= time.Now().Unix() {
		t.Errorf("exp = %d, want future", exp)
	}

	claims, err := Parse("s3cret", token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims["username"] != "panitia" || claims["role"] != "admin" {
		t.Errorf("claims = %v", claims)
	}

	if _, err := Parse("other", token); err == nil {
		t.Error("Parse() with wrong secret should fail")
	}
}

func TestSign_Expired(t *testing.T) {
	t.Parallel()

	token, _, err := SignWithSecret("s3cret", nil, -time.Minute)
	if err != nil {
		t.Fatalf("SignWithSecret() error = %v", err)
	}
	if _, err := Parse("s3cret", token); err == nil {
		t.Error("Parse() of expired token should fail")
	}
}

func TestSign_MissingSecret(t *testing.T) {
	t.Parallel()

	if _, _, err := SignWithSecret("", nil, time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("error = %v, want ErrMissingSecret", err)
	}
}
