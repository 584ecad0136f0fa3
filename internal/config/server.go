package config

import (
	"CompetitionHub/database/postgres"
	adminHandler "CompetitionHub/internal/api/admin/handler"
	adminService "CompetitionHub/internal/api/admin/service"
	chatbotHandler "CompetitionHub/internal/api/chatbot/handler"
	chatbotRepository "CompetitionHub/internal/api/chatbot/repository"
	chatbotService "CompetitionHub/internal/api/chatbot/service"
	competitionHandler "CompetitionHub/internal/api/competition/handler"
	competitionRepository "CompetitionHub/internal/api/competition/repository"
	competitionService "CompetitionHub/internal/api/competition/service"
	registrationHandler "CompetitionHub/internal/api/registration/handler"
	registrationRepository "CompetitionHub/internal/api/registration/repository"
	registrationService "CompetitionHub/internal/api/registration/service"
	"CompetitionHub/internal/middleware"
	"CompetitionHub/pkg/bcrypt"
	chatbotPkg "CompetitionHub/pkg/chatbot"
	"CompetitionHub/pkg/redis"
	"CompetitionHub/pkg/s3"
	"CompetitionHub/pkg/smtp"
	"CompetitionHub/pkg/spreadsheet"
	"CompetitionHub/pkg/utils"
	"CompetitionHub/pkg/whatsapp"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	redisServer    redis.IRedis
	spreadsheet    spreadsheet.IClient
	classifier     chatbotPkg.IClassifier
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.redisServer == nil {
		server.redisServer = redis.NewMemory()
	}
	if server.whatsappClient == nil {
		server.whatsappClient = whatsapp.Disabled()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSpreadsheet(client spreadsheet.IClient) ServerOption {
	return func(s *Server) error {
		s.spreadsheet = client
		return nil
	}
}

// WithClassifier builds the FAQ classifier. SUPPORT_CONTACTS overrides the
// contact line quoted in fallback replies.
func WithClassifier() ServerOption {
	return func(s *Server) error {
		s.classifier = chatbotPkg.NewClassifier(chatbotPkg.Config{
			SupportContacts: os.Getenv("SUPPORT_CONTACTS"),
		})
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client is optional: without AWS_BUCKET_NAME receipts are rendered on
// demand instead of stored.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if errors.Is(err, s3.ErrNotConfigured) {
			if s.log != nil {
				s.log.Warn("S3 not configured, receipts will not be stored")
			}
			return nil
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient pairs the WhatsApp sender when WHATSAPP_ENABLED is true.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		enabled, _ := strconv.ParseBool(os.Getenv("WHATSAPP_ENABLED"))
		if !enabled {
			s.whatsappClient = whatsapp.Disabled()
			return nil
		}

		client, err := whatsapp.New(context.Background(), s.log)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Competition Domain
	competitionRepo := competitionRepository.New(s.spreadsheet, s.redisServer, s.log)
	competitionServices := competitionService.NewCompetitionService(s.log, competitionRepo)
	competitionHandlers := competitionHandler.New(s.log, s.validator, s.middleware, competitionServices)

	// Registration Domain
	registrationRepo := registrationRepository.New(s.db, s.log)
	registrationServices := registrationService.NewRegistrationService(
		s.log,
		s.validator,
		registrationRepo,
		competitionServices,
		s.spreadsheet,
		s.utils,
		registrationService.Notifiers{
			S3:       s.s3Client,
			Mailer:   s.smtpMailer,
			Whatsapp: s.whatsappClient,
		},
	)
	registrationHandlers := registrationHandler.New(s.log, s.validator, s.middleware, registrationServices)

	// Chatbot
	chatRepo := chatbotRepository.New(s.redisServer, s.log)
	chatServices := chatbotService.NewChatbotService(s.log, s.classifier, chatRepo, s.utils)
	chatHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Admin
	adminServices := adminService.NewAdminService(s.log, s.bcryptUtils, s.redisServer, adminService.CredentialsFromEnv())
	adminHandlers := adminHandler.New(s.log, s.validator, s.middleware, adminServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, competitionHandlers, registrationHandlers, chatHandlers, adminHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests and releases every client the server
// opened.
func (s *Server) Shutdown() {
	if err := s.engine.Shutdown(); err != nil {
		s.log.Errorf("Error shutting down HTTP server: %v", err)
	}
	if err := s.whatsappClient.Disconnect(); err != nil {
		s.log.Errorf("Error disconnecting WhatsApp: %v", err)
	}
	if err := s.redisServer.Close(); err != nil {
		s.log.Errorf("Error closing Redis: %v", err)
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Errorf("Error closing database: %v", err)
		}
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
