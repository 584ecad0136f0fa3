package registrationService

import (
	"CompetitionHub/internal/api/registration"
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/receipt"
	"CompetitionHub/pkg/spreadsheet"
	"CompetitionHub/pkg/whatsapp"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *registrationService) ValidateStep(ctx context.Context, step int, req registration.RegisterRequest) (registration.StepResult, error) {
	part, ok := req.Step(step)
	if !ok {
		return registration.StepResult{}, registration.ErrInvalidStep
	}

	result := registration.StepResult{
		Progress: req.Progress(),
		Missing:  []string{},
	}

	if err := s.validate.StructCtx(ctx, part); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return registration.StepResult{}, err
		}
		for _, fe := range verrs {
			result.Missing = append(result.Missing, fe.Field())
		}
	}

	result.Valid = len(result.Missing) == 0
	return result, nil
}

func (s *registrationService) Register(ctx context.Context, req registration.RegisterRequest) (entity.Registration, error) {
	requestID := contextPkg.GetRequestID(ctx)
	reg := req.ToEntity()

	if reg.Whatsapp != "" {
		phone, err := whatsapp.NormalizePhone(reg.Whatsapp)
		if err != nil {
			return entity.Registration{}, registration.ErrInvalidWhatsapp
		}
		reg.Whatsapp = phone
	}

	comp, err := s.competitions.GetByID(ctx, reg.CompetitionID)
	if err != nil {
		return entity.Registration{}, err
	}
	if !comp.IsOpen() {
		return entity.Registration{}, registration.ErrCompetitionClosed
	}
	reg.CompetitionName = comp.Nama

	reg.RegisteredAt = s.now()
	reg.ID, err = s.utils.NewRegistrationID(reg.RegisteredAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate registration id")
		return entity.Registration{}, err
	}

	result, err := s.sheet.Submit(ctx, registration.SpreadsheetForm(reg))
	if err != nil {
		var rejected *spreadsheet.RejectedError
		if errors.As(err, &rejected) {
			s.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"competition_id": reg.CompetitionID,
				"reason":         rejected.Message,
			}).Warn("Registration rejected by spreadsheet")
			return entity.Registration{}, fmt.Errorf("%w: %s", registration.ErrSubmissionRejected, rejected.Message)
		}

		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"competition_id": reg.CompetitionID,
			"error":          err.Error(),
		}).Error("Failed to submit registration")
		return entity.Registration{}, registration.ErrSubmissionFailed
	}
	if result.RegistrationID != "" {
		reg.ID = result.RegistrationID
	}

	png := s.renderReceipt(requestID, reg)
	if png != nil && s.s3 != nil {
		location, err := s.s3.UploadBytes(ctx, receiptKey(reg.ID), receipt.ContentType, png)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"registration_id": reg.ID,
				"error":           err.Error(),
			}).Warn("Failed to upload receipt")
		} else {
			reg.ReceiptURL = location
		}
	}

	// The spreadsheet already holds the registration, so a local write
	// failure is logged rather than reported back as a failed signup.
	if err := s.persist(ctx, reg); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"registration_id": reg.ID,
			"error":           err.Error(),
		}).Error("Registration submitted but not stored locally")
		s.dropReceipt(requestID, &reg)
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"registration_id": reg.ID,
		"competition_id":  reg.CompetitionID,
	}).Info("Registration submitted")

	s.notify(requestID, reg, png)
	return reg, nil
}

func (s *registrationService) persist(ctx context.Context, reg entity.Registration) error {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}
	return client.Registration.Create(ctx, reg)
}

// dropReceipt removes an uploaded receipt nothing will point to.
func (s *registrationService) dropReceipt(requestID string, reg *entity.Registration) {
	if reg.ReceiptURL == "" || s.s3 == nil {
		return
	}
	if err := s.s3.DeleteFile(reg.ReceiptURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"registration_id": reg.ID,
			"error":           err.Error(),
		}).Warn("Failed to delete orphaned receipt")
		return
	}
	reg.ReceiptURL = ""
}

func (s *registrationService) GetByID(ctx context.Context, id string) (entity.Registration, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return entity.Registration{}, err
	}
	return client.Registration.GetByID(ctx, id)
}

// Receipt prefers a presigned link to the stored copy and falls back to
// rendering the PNG again.
func (s *registrationService) Receipt(ctx context.Context, id string) (registration.ReceiptResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	reg, err := s.GetByID(ctx, id)
	if err != nil {
		return registration.ReceiptResult{}, err
	}

	result := registration.ReceiptResult{FileName: receipt.FileName(reg.ID)}

	if reg.ReceiptURL != "" && s.s3 != nil {
		link, err := s.s3.PresignUrl(reg.ReceiptURL)
		if err == nil {
			result.RedirectURL = link
			return result, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"registration_id": reg.ID,
			"error":           err.Error(),
		}).Warn("Failed to presign stored receipt, rendering a fresh copy")
	}

	result.PNG = s.renderReceipt(requestID, reg)
	if result.PNG == nil {
		return registration.ReceiptResult{}, registration.ErrReceiptUnavailable
	}
	return result, nil
}

func (s *registrationService) List(ctx context.Context, filter entity.RegistrationFilter) ([]entity.Registration, int, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, 0, err
	}

	regs, err := client.Registration.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := client.Registration.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (s *registrationService) renderReceipt(requestID string, reg entity.Registration) []byte {
	png, err := receipt.Render(ReceiptData(reg))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"registration_id": reg.ID,
			"error":           err.Error(),
		}).Error("Failed to render receipt")
		return nil
	}
	return png
}

func ReceiptData(reg entity.Registration) receipt.Data {
	return receipt.Data{
		RegistrationID:  reg.ID,
		Timestamp:       reg.Timestamp(),
		CompetitionName: reg.CompetitionName,
		Nama:            reg.Nama,
		Gender:          reg.Gender,
		Sabuk:           reg.Sabuk,
		Dojang:          reg.Dojang,
		Kategori:        reg.KategoriText(),
		Kelas:           reg.Kelas,
		Jersey:          reg.JerseyText(),
	}
}

func receiptKey(id string) string {
	return "receipts/" + receipt.FileName(id)
}
