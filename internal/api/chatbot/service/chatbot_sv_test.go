package chatbotService

import (
	"CompetitionHub/internal/api/chatbot"
	chatbotRepository "CompetitionHub/internal/api/chatbot/repository"
	chatbotPkg "CompetitionHub/pkg/chatbot"
	"CompetitionHub/pkg/redis"
	"CompetitionHub/pkg/utils"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestService(t *testing.T, store redis.IRedis) *chatbotService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewChatbotService(
		logger,
		chatbotPkg.NewClassifier(chatbotPkg.Config{Pick: func(int) int { return 0 }}),
		chatbotRepository.New(store, logger),
		utils.New(),
	).(*chatbotService)
	svc.jitter = func(n int64) int64 { return n - 1 }
	return svc
}

// failingRedis rejects every call.
type failingRedis struct{}

var errDown = errors.New("redis down")

func (failingRedis) Set(context.Context, string, string, time.Duration) error { return errDown }
func (failingRedis) Get(context.Context, string) (string, error)              { return "", errDown }
func (failingRedis) Delete(context.Context, string) error                     { return errDown }
func (failingRedis) Append(context.Context, string, time.Duration, ...string) error {
	return errDown
}
func (failingRedis) List(context.Context, string) ([]string, error) { return nil, errDown }
func (failingRedis) Exists(context.Context, string) (bool, error)   { return false, errDown }
func (failingRedis) Close() error                                   { return nil }

func TestReply_NewSessionStartsWithWelcome(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	ctx := context.Background()

	exchange, err := svc.Reply(ctx, "", "gimana cara daftar?")
	if err != nil {
		t.Fatal(err)
	}
	if exchange.SessionID == "" {
		t.Fatal("Reply() did not assign a session id")
	}
	if exchange.Detection.Intent != chatbotPkg.IntentRegistration {
		t.Fatalf("intent = %s, want registration", exchange.Detection.Intent)
	}
	if exchange.TypingDelay != TypingDelay {
		t.Fatalf("TypingDelay = %v, want %v", exchange.TypingDelay, TypingDelay)
	}
	if exchange.User.IsBot || !exchange.Bot.IsBot {
		t.Fatal("user/bot flags are swapped")
	}
	if exchange.Bot.Intent != "registration" {
		t.Fatalf("bot message intent = %q", exchange.Bot.Intent)
	}

	transcript, err := svc.Transcript(ctx, exchange.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if len(transcript) != 3 {
		t.Fatalf("transcript has %d messages, want 3", len(transcript))
	}
	if transcript[0].Text != chatbotPkg.WelcomeMessage || !transcript[0].IsBot {
		t.Fatalf("first message = %+v, want welcome", transcript[0])
	}
	if transcript[1].Text != "gimana cara daftar?" {
		t.Fatalf("user message = %q", transcript[1].Text)
	}
	if transcript[2].Text != exchange.Bot.Text {
		t.Fatal("stored bot message differs from the reply")
	}
}

func TestReply_ExistingSessionAppends(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	ctx := context.Background()

	sessionID, welcome, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if welcome.Text != chatbotPkg.WelcomeMessage {
		t.Fatalf("welcome = %q", welcome.Text)
	}

	for _, msg := range []string{"halo", "terima kasih"} {
		exchange, err := svc.Reply(ctx, sessionID, msg)
		if err != nil {
			t.Fatal(err)
		}
		if exchange.SessionID != sessionID {
			t.Fatalf("session id changed to %q", exchange.SessionID)
		}
	}

	transcript, _ := svc.Transcript(ctx, sessionID)
	if len(transcript) != 5 {
		t.Fatalf("transcript has %d messages, want 5", len(transcript))
	}
	if transcript[4].Intent != "thanks" {
		t.Fatalf("last intent = %q, want thanks", transcript[4].Intent)
	}
}

func TestReply_UnknownSessionGetsWelcome(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	ctx := context.Background()

	if _, err := svc.Reply(ctx, "expired01", "halo"); err != nil {
		t.Fatal(err)
	}
	transcript, _ := svc.Transcript(ctx, "expired01")
	if len(transcript) != 3 || transcript[0].Text != chatbotPkg.WelcomeMessage {
		t.Fatalf("transcript = %+v", transcript)
	}
}

func TestReply_Blank(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	for _, in := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Reply(context.Background(), "", in); !errors.Is(err, chatbot.ErrBlankMessage) {
			t.Errorf("Reply(%q) error = %v, want ErrBlankMessage", in, err)
		}
	}
}

func TestReply_StorageFailureStillAnswers(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, failingRedis{})

	exchange, err := svc.Reply(context.Background(), "abc123", "berapa biaya pendaftarannya")
	if err != nil {
		t.Fatalf("Reply() error = %v, want nil", err)
	}
	if exchange.Detection.Intent != chatbotPkg.IntentCost || exchange.Bot.Text == "" {
		t.Fatalf("exchange = %+v", exchange)
	}

	if _, _, err := svc.StartSession(context.Background()); err != nil {
		t.Fatalf("StartSession() error = %v, want nil", err)
	}
}

func TestReplyQuickAction(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	ctx := context.Background()

	tests := []struct {
		id      string
		want    chatbotPkg.Intent
		wantErr error
	}{
		{id: "registration", want: chatbotPkg.IntentRegistration},
		{id: "requirements", want: chatbotPkg.IntentRequirements},
		{id: "cost", want: chatbotPkg.IntentCost},
		{id: "categories", want: chatbotPkg.IntentCategories},
		{id: "contact", want: chatbotPkg.IntentGreeting},
		{id: "missing", wantErr: chatbot.ErrQuickActionNotFound},
	}

	for _, tt := range tests {
		exchange, err := svc.ReplyQuickAction(ctx, "", tt.id)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReplyQuickAction(%q) error = %v, want %v", tt.id, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ReplyQuickAction(%q) error = %v", tt.id, err)
		}
		if exchange.Detection.Intent != tt.want {
			t.Errorf("ReplyQuickAction(%q) intent = %s, want %s", tt.id, exchange.Detection.Intent, tt.want)
		}

		action, _ := svc.classifier.QuickAction(tt.id)
		if exchange.User.Text != action.Text {
			t.Errorf("user text = %q, want label %q", exchange.User.Text, action.Text)
		}

		wantDelay := TypingDelay + QuickActionJitter - 1
		if exchange.TypingDelay != wantDelay {
			t.Errorf("TypingDelay = %v, want %v", exchange.TypingDelay, wantDelay)
		}
	}
}

func TestQuickActionDelayBounds(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	svc.jitter = rand.Int64N

	for i := 0; i < 50; i++ {
		exchange, err := svc.ReplyQuickAction(context.Background(), "bounds01", "cost")
		if err != nil {
			t.Fatal(err)
		}
		if exchange.TypingDelay < TypingDelay || exchange.TypingDelay >= TypingDelay+QuickActionJitter {
			t.Fatalf("TypingDelay = %v out of [%v, %v)", exchange.TypingDelay, TypingDelay, TypingDelay+QuickActionJitter)
		}
	}
}

func TestTranscript_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	if _, err := svc.Transcript(context.Background(), "nothing"); !errors.Is(err, chatbot.ErrSessionNotFound) {
		t.Fatalf("Transcript() error = %v, want ErrSessionNotFound", err)
	}
}

func TestQuickActions(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, redis.NewMemory())
	actions := svc.QuickActions()
	if len(actions) != 5 || actions[0].ID != "registration" {
		t.Fatalf("QuickActions() = %+v", actions)
	}
}
