package registrationService

import (
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/receipt"
	"CompetitionHub/pkg/smtp"
	"CompetitionHub/pkg/whatsapp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// notify sends the confirmation copies in the background. Neither channel
// can fail the registration.
func (s *registrationService) notify(requestID string, reg entity.Registration, png []byte) {
	if reg.Email == "" && reg.Whatsapp == "" {
		return
	}

	s.async(func() {
		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), notifyTimeout)
		defer cancel()

		fields := logrus.Fields{
			"request_id":      requestID,
			"registration_id": reg.ID,
		}

		if reg.Email != "" && s.mailer != nil {
			mail := smtp.Mail{
				To:      reg.Email,
				Subject: "Bukti Pendaftaran " + reg.ID,
				Body:    confirmationText(reg),
			}
			if png != nil {
				mail.Attachments = []smtp.Attachment{{
					Filename:    receipt.FileName(reg.ID),
					ContentType: receipt.ContentType,
					Data:        png,
				}}
			}
			if err := s.mailer.Send(mail); err != nil {
				s.log.WithFields(fields).WithField("error", err.Error()).Warn("Failed to email registration receipt")
			}
		}

		if reg.Whatsapp != "" {
			err := s.whatsapp.SendMessage(ctx, reg.Whatsapp, confirmationText(reg))
			switch {
			case errors.Is(err, whatsapp.ErrDisabled):
				s.log.WithFields(fields).Debug("WhatsApp disabled, confirmation not sent")
			case err != nil:
				s.log.WithFields(fields).WithField("error", err.Error()).Warn("Failed to send WhatsApp confirmation")
			}
		}
	})
}

func confirmationText(reg entity.Registration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s,\n\n", reg.Nama)
	fmt.Fprintf(&b, "Pendaftaran kamu untuk %s sudah kami terima.\n\n", reg.CompetitionName)
	fmt.Fprintf(&b, "ID Pendaftaran: %s\n", reg.ID)
	fmt.Fprintf(&b, "Waktu: %s\n", reg.Timestamp())
	fmt.Fprintf(&b, "Kategori: %s\n", reg.KategoriText())
	fmt.Fprintf(&b, "Kelas: %s\n", reg.Kelas)
	fmt.Fprintf(&b, "Jersey: %s\n\n", reg.JerseyText())
	b.WriteString("Simpan bukti pendaftaran ini dan tunjukkan saat daftar ulang.\n\nSalam,\nPanitia")
	return b.String()
}
