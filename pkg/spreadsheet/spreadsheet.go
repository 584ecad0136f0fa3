package spreadsheet

import (
	"CompetitionHub/internal/entity"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const DefaultURL = "https://script.google.com/macros/s/AKfycbxBdFaCAXRAVjZYoEnWlJ7He7yeXjZrTYY11YsCjOLTmB-Ewe58jEKh97iXRdthIGhiMA/exec"

var (
	ErrUnavailable = errors.New("spreadsheet endpoint unavailable")
	ErrBadPayload  = errors.New("spreadsheet returned an unexpected payload")
)

// RejectedError is returned when the script answers with {"error": "..."}.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "spreadsheet rejected submission: " + e.Message
}

type SubmitResult struct {
	// RegistrationID is set when the script assigns its own id.
	RegistrationID string
	Raw            string
}

type IClient interface {
	FetchCompetitions(ctx context.Context) ([]entity.Competition, error)
	Submit(ctx context.Context, form url.Values) (SubmitResult, error)
}

type client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) IClient {
	baseURL := os.Getenv("SPREADSHEET_URL")
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return NewWithURL(log, baseURL, &http.Client{Timeout: 30 * time.Second})
}

func NewWithURL(log *logrus.Logger, baseURL string, httpClient *http.Client) IClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log,
	}
}

func (c *client) FetchCompetitions(ctx context.Context) ([]entity.Competition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var competitions []entity.Competition
	if err := jsoniter.Unmarshal(body, &competitions); err != nil {
		c.log.WithFields(logrus.Fields{
			"error":        err.Error(),
			"response_raw": truncate(string(body), 512),
		}).Error("Failed to decode competitions")
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return competitions, nil
}

// Submit posts form as application/x-www-form-urlencoded. A reply that is
// not JSON counts as success; a JSON reply with an "error" field does not.
func (c *client) Submit(ctx context.Context, form url.Values) (SubmitResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return SubmitResult{}, err
	}

	raw := string(body)
	c.log.WithFields(logrus.Fields{
		"response_raw": truncate(raw, 512),
	}).Debug("Spreadsheet submit response")

	var reply struct {
		Error          string            `json:"error"`
		RegistrationID entity.FlexString `json:"registrationId"`
	}
	if err := jsoniter.Unmarshal(body, &reply); err != nil {
		c.log.Debug("Submit response is not JSON, treating as success")
		return SubmitResult{Raw: raw}, nil
	}

	if reply.Error != "" {
		return SubmitResult{Raw: raw}, &RejectedError{Message: reply.Error}
	}

	return SubmitResult{RegistrationID: reply.RegistrationID.String(), Raw: raw}, nil
}

func (c *client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"method": req.Method,
		}).Error("Spreadsheet request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.WithFields(logrus.Fields{
			"status":       resp.StatusCode,
			"response_raw": truncate(string(body), 512),
		}).Error("Spreadsheet responded with error status")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
