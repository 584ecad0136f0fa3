package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestToMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "satu", want: "satu"},
		{in: "satu\ndua", want: "satu  \ndua"},
		{in: "judul\n\nisi\n", want: "judul\n\nisi"},
	}

	for _, tt := range tests {
		if got := toMarkdown(tt.in); got != tt.want {
			t.Errorf("toMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("halo\n/quick\n/q cost\n/q nope\n/exit\n")
	var out bytes.Buffer

	if err := run(in, &out, options{style: "notty", width: 120}); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"asisten virtual", "registration", "Biaya pendaftaran", "tidak ditemukan"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_EOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run(strings.NewReader("terima kasih"), &out, options{style: "ascii", width: 80}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Bot") {
		t.Fatalf("output = %q", out.String())
	}
}
