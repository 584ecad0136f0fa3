package chatbot

import "testing"

func TestFormatHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "halo", "halo"},
		{"bold", "**Kyorugi** dulu", "<strong>Kyorugi</strong> dulu"},
		{"italic", "pakai *dobok*", "pakai <em>dobok</em>"},
		{"bold then italic", "**a** dan *b*", "<strong>a</strong> dan <em>b</em>"},
		{"newlines", "baris 1\nbaris 2", "baris 1<br>baris 2"},
		{"escapes html", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"escapes inside markup", "**<b>**", "<strong>&lt;b&gt;</strong>"},
		{"unbalanced", "5 * 3", "5 * 3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatHTML(tt.in); got != tt.want {
				t.Errorf("FormatHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
