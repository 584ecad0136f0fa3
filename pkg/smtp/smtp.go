package smtp

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	smtpPkg "net/smtp"
	"net/textproto"
	"os"
	"strings"
)

var ErrNotConfigured = errors.New("smtp sender not configured")

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

type ItfSmtp interface {
	Send(mail Mail) error
}

type smtp struct {
	auth smtpPkg.Auth
	addr string
	mail string
	send func(addr string, a smtpPkg.Auth, from string, to []string, msg []byte) error
}

// New reads SMTP_MAIL and SMTP_PASSWORD. SMTP_HOST and SMTP_PORT default to
// Gmail's submission endpoint.
func New() (ItfSmtp, error) {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	if mail == "" || password == "" {
		return nil, ErrNotConfigured
	}

	host := envOr("SMTP_HOST", "smtp.gmail.com")
	port := envOr("SMTP_PORT", "587")

	return &smtp{
		auth: smtpPkg.PlainAuth("", mail, password, host),
		addr: host + ":" + port,
		mail: mail,
		send: smtpPkg.SendMail,
	}, nil
}

func (s *smtp) Send(mail Mail) error {
	msg, err := BuildMessage(s.mail, mail)
	if err != nil {
		return err
	}
	return s.send(s.addr, s.auth, s.mail, []string{mail.To}, msg)
}

// BuildMessage renders mail as a MIME message: plain text when there are no
// attachments, multipart/mixed otherwise.
func BuildMessage(from string, mail Mail) ([]byte, error) {
	if strings.ContainsAny(mail.To, "\r\n") || strings.ContainsAny(mail.Subject, "\r\n") {
		return nil, errors.New("smtp: header values must not contain line breaks")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", mail.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", mail.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(mail.Attachments) == 0 {
		buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
		buf.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
		buf.WriteString(mail.Body)
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	text, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/plain; charset=\"utf-8\""},
		"Content-Transfer-Encoding": {"8bit"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := text.Write([]byte(mail.Body)); err != nil {
		return nil, err
	}

	for _, a := range mail.Attachments {
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {a.ContentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", a.Filename)},
		})
		if err != nil {
			return nil, err
		}
		if err := writeBase64Lines(part, a.Data); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBase64Lines(w interface{ Write([]byte) (int, error) }, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		if _, err := w.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err := w.Write([]byte(encoded))
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
