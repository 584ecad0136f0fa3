package whatsapp

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0851-5695-6953", "6285156956953", false},
		{"+62 882 9372 6256", "6288293726256", false},
		{"85156956953", "6285156956953", false},
		{"6285156956953", "6285156956953", false},
		{"", "", true},
		{"12345", "", true},
		{"0812", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizePhone(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	s := Disabled()
	if err := s.SendMessage(context.Background(), "0812", "x"); !errors.Is(err, ErrDisabled) {
		t.Errorf("SendMessage() error = %v, want ErrDisabled", err)
	}
	if s.IsConnected() {
		t.Error("disabled sender reports connected")
	}
}
