package bcrypt

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	b := NewWithCost(bcrypt.MinCost)
	hash, err := b.HashPassword("rahasia123")
	if err != nil {
		t.Fatal(err)
	}

	if err := b.ComparePassword(hash, "rahasia123"); err != nil {
		t.Errorf("ComparePassword() = %v, want nil", err)
	}
	if err := b.ComparePassword(hash, "salah"); !errors.Is(err, ErrMismatch) {
		t.Errorf("ComparePassword() = %v, want ErrMismatch", err)
	}
	if err := b.ComparePassword("not-a-hash", "rahasia123"); err == nil || errors.Is(err, ErrMismatch) {
		t.Errorf("ComparePassword() on a bad hash = %v", err)
	}
}
