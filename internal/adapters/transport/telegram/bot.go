package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	"pet-triage/internal/domain/intake"
	"pet-triage/internal/platform/logger"
	"pet-triage/internal/platform/metrics"
)

// textTryAgain se envía cuando el turno falla (store caído, etc.).
const textTryAgain = "مشکلی پیش آمد. لطفاً چند لحظه بعد دوباره تلاش کنید."

// Conversation es lo que el bot necesita del intake.
type Conversation interface {
	Handle(ctx context.Context, userID, text string) (intake.Response, error)
}

// API es el subconjunto de Client que usa el bot (fakeable en tests).
type API interface {
	GetUpdates(ctx context.Context, offset int64) ([]Update, error)
	SendMessage(ctx context.Context, chatID int64, msg intake.Message) error
}

type Bot struct {
	api   API
	conv  Conversation
	log   logger.Logger
	queue *dispatcher

	// retryDelay es la pausa tras un getUpdates fallido.
	retryDelay time.Duration
}

func NewBot(api API, conv Conversation, log logger.Logger) *Bot {
	if log == nil {
		log = logger.NewNop()
	}
	return &Bot{
		api:        api,
		conv:       conv,
		log:        log.With(map[string]any{"component": "telegram"}),
		queue:      newDispatcher(),
		retryDelay: 3 * time.Second,
	}
}

// Run hace long polling hasta que ctx se cancela y espera los turnos en curso.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("telegram polling started", nil)
	defer b.queue.Wait()

	var offset int64
	for {
		if ctx.Err() != nil {
			b.log.Info("telegram polling stopped", nil)
			return nil
		}

		updates, err := b.api.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.log.Warn("telegram getUpdates failed", map[string]any{"error": err})
			select {
			case <-ctx.Done():
			case <-time.After(b.retryDelay):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			b.dispatch(ctx, u)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, u Update) {
	m := u.Message
	if m == nil || strings.TrimSpace(m.Text) == "" {
		metrics.TelegramUpdates.WithLabelValues("ignored").Inc()
		return
	}

	userID := strconv.FormatInt(m.Chat.ID, 10)
	if m.From != nil {
		userID = strconv.FormatInt(m.From.ID, 10)
	}
	chatID := m.Chat.ID
	text := m.Text

	b.queue.Submit(ctx, userID, func(ctx context.Context) {
		b.handle(ctx, userID, chatID, text)
	})
}

func (b *Bot) handle(ctx context.Context, userID string, chatID int64, text string) {
	resp, err := b.conv.Handle(ctx, userID, text)
	if err != nil {
		metrics.TelegramUpdates.WithLabelValues("error").Inc()
		b.log.Error("intake turn failed", map[string]any{"user_id": userID, "error": err})
		b.send(ctx, userID, chatID, intake.Message{Text: textTryAgain})
		return
	}

	metrics.TelegramUpdates.WithLabelValues("handled").Inc()
	for _, msg := range resp.Messages {
		b.send(ctx, userID, chatID, msg)
	}
}

func (b *Bot) send(ctx context.Context, userID string, chatID int64, msg intake.Message) {
	if err := b.api.SendMessage(ctx, chatID, msg); err != nil {
		metrics.TelegramSendFailures.Inc()
		b.log.Warn("telegram sendMessage failed", map[string]any{"user_id": userID, "error": err})
	}
}
