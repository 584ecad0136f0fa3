package registrationService

import (
	competitionService "CompetitionHub/internal/api/competition/service"
	"CompetitionHub/internal/api/registration"
	registrationRepository "CompetitionHub/internal/api/registration/repository"
	"CompetitionHub/internal/entity"
	"CompetitionHub/pkg/s3"
	"CompetitionHub/pkg/smtp"
	"CompetitionHub/pkg/spreadsheet"
	"CompetitionHub/pkg/utils"
	"CompetitionHub/pkg/whatsapp"
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const notifyTimeout = 30 * time.Second

type IRegistrationService interface {
	ValidateStep(ctx context.Context, step int, req registration.RegisterRequest) (registration.StepResult, error)
	Register(ctx context.Context, req registration.RegisterRequest) (entity.Registration, error)
	GetByID(ctx context.Context, id string) (entity.Registration, error)
	Receipt(ctx context.Context, id string) (registration.ReceiptResult, error)
	List(ctx context.Context, filter entity.RegistrationFilter) ([]entity.Registration, int, error)
}

// Notifiers are optional. A nil s3 keeps receipts render-on-demand and a nil
// mailer skips the email copy.
type Notifiers struct {
	S3       s3.ItfS3
	Mailer   smtp.ItfSmtp
	Whatsapp whatsapp.IWhatsappSender
}

type registrationService struct {
	log          *logrus.Logger
	validate     *validator.Validate
	repo         registrationRepository.Repository
	competitions competitionService.ICompetitionService
	sheet        spreadsheet.IClient
	utils        utils.IUtils
	s3           s3.ItfS3
	mailer       smtp.ItfSmtp
	whatsapp     whatsapp.IWhatsappSender
	now          func() time.Time
	async        func(func())
}

func NewRegistrationService(
	log *logrus.Logger,
	validate *validator.Validate,
	repo registrationRepository.Repository,
	competitions competitionService.ICompetitionService,
	sheet spreadsheet.IClient,
	utils utils.IUtils,
	notifiers Notifiers,
) IRegistrationService {
	wa := notifiers.Whatsapp
	if wa == nil {
		wa = whatsapp.Disabled()
	}

	return &registrationService{
		log:          log,
		validate:     validate,
		repo:         repo,
		competitions: competitions,
		sheet:        sheet,
		utils:        utils,
		s3:           notifiers.S3,
		mailer:       notifiers.Mailer,
		whatsapp:     wa,
		now:          time.Now,
		async:        func(f func()) { go f() },
	}
}
