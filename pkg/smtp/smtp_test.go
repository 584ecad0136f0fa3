package smtp

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	smtpPkg "net/smtp"
	"strings"
	"testing"
)

func TestBuildMessage_Plain(t *testing.T) {
	t.Parallel()

	msg, err := BuildMessage("panitia@example.com", Mail{
		To:      "budi@example.com",
		Subject: "Bukti Pendaftaran REG-1",
		Body:    "Halo Budi",
	})
	if err != nil {
		t.Fatalf("BuildMessage() error = %v", err)
	}

	parsed, err := mail.ReadMessage(bytes.NewReader(msg))
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if got := parsed.Header.Get("To"); got != "budi@example.com" {
		t.Errorf("To = %q", got)
	}
	body, _ := io.ReadAll(parsed.Body)
	if string(body) != "Halo Budi" {
		t.Errorf("body = %q", body)
	}
}

func TestBuildMessage_Attachment(t *testing.T) {
	t.Parallel()

	png := bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 40)
	msg, err := BuildMessage("panitia@example.com", Mail{
		To:      "budi@example.com",
		Subject: "Bukti",
		Body:    "terlampir",
		Attachments: []Attachment{
			{Filename: "Bukti_Pendaftaran_REG-1.png", ContentType: "image/png", Data: png},
		},
	})
	if err != nil {
		t.Fatalf("BuildMessage() error = %v", err)
	}

	parsed, err := mail.ReadMessage(bytes.NewReader(msg))
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/mixed" {
		t.Fatalf("content type = %q (%v)", mediaType, err)
	}

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var parts []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart() error = %v", err)
		}
		parts = append(parts, p.Header.Get("Content-Type"))
		if strings.HasPrefix(p.Header.Get("Content-Disposition"), "attachment") && p.FileName() != "Bukti_Pendaftaran_REG-1.png" {
			t.Errorf("filename = %q", p.FileName())
		}
	}
	if len(parts) != 2 || parts[1] != "image/png" {
		t.Errorf("parts = %v", parts)
	}
}

func TestBuildMessage_RejectsHeaderInjection(t *testing.T) {
	t.Parallel()

	_, err := BuildMessage("a@example.com", Mail{To: "b@example.com\r\nBcc: c@example.com", Subject: "x"})
	if err == nil {
		t.Fatal("expected error for CRLF in recipient")
	}
}

func TestSend_UsesConfiguredTransport(t *testing.T) {
	t.Parallel()

	var gotTo []string
	s := &smtp{
		addr: "localhost:2525",
		mail: "panitia@example.com",
		send: func(addr string, _ smtpPkg.Auth, from string, to []string, msg []byte) error {
			if addr != "localhost:2525" || from != "panitia@example.com" {
				t.Errorf("addr=%q from=%q", addr, from)
			}
			gotTo = to
			return nil
		},
	}

	if err := s.Send(Mail{To: "budi@example.com", Subject: "x", Body: "y"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(gotTo) != 1 || gotTo[0] != "budi@example.com" {
		t.Errorf("to = %v", gotTo)
	}
}
