package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-triage/internal/domain/intake"
	"pet-triage/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type sent struct {
	chatID int64
	msg    intake.Message
}

// fakeAPI entrega los batches en orden y después bloquea hasta que se cancela ctx.
type fakeAPI struct {
	mu      sync.Mutex
	batches [][]Update
	offsets []int64
	sent    []sent
	failGet int
}

func (f *fakeAPI) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	f.mu.Lock()
	f.offsets = append(f.offsets, offset)
	if f.failGet > 0 {
		f.failGet--
		f.mu.Unlock()
		return nil, errors.New("network down")
	}
	if len(f.batches) > 0 {
		b := f.batches[0]
		f.batches = f.batches[1:]
		f.mu.Unlock()
		return b, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *fakeAPI) SendMessage(_ context.Context, chatID int64, msg intake.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{chatID: chatID, msg: msg})
	return nil
}

func (f *fakeAPI) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, s := range f.sent {
		out = append(out, s.msg.Text)
	}
	return out
}

// echoConv responde con el mismo texto, o falla si el texto es "boom".
type echoConv struct {
	mu    sync.Mutex
	turns map[string][]string
}

func (c *echoConv) Handle(_ context.Context, userID, text string) (intake.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.turns == nil {
		c.turns = make(map[string][]string)
	}
	c.turns[userID] = append(c.turns[userID], text)
	if text == "boom" {
		return intake.Response{}, errors.New("store down")
	}
	return intake.Response{Messages: []intake.Message{{Text: "echo:" + text}}}, nil
}

func msg(updateID, userID int64, text string) Update {
	return Update{UpdateID: updateID, Message: &Message{From: &User{ID: userID}, Chat: Chat{ID: userID}, Text: text}}
}

func runBot(t *testing.T, b *Bot, until func() bool) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.Eventually(t, until, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bot did not stop")
	}
}

func TestBot_HandlesUpdatesInOrderAndAdvancesOffset(t *testing.T) {
	defer goleak.VerifyNone(t)

	api := &fakeAPI{batches: [][]Update{
		{msg(5, 1, "a"), msg(6, 1, "b"), {UpdateID: 7}},
		{msg(8, 1, "c")},
	}}
	conv := &echoConv{}
	b := NewBot(api, conv, logger.NewTest(t))

	runBot(t, b, func() bool {
		if len(api.sentTexts()) != 3 {
			return false
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		return len(api.offsets) == 3
	})

	assert.Equal(t, []string{"echo:a", "echo:b", "echo:c"}, api.sentTexts())
	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, []int64{0, 8, 9}, api.offsets)
}

func TestBot_TurnErrorSendsTryAgain(t *testing.T) {
	api := &fakeAPI{batches: [][]Update{{msg(1, 9, "boom")}}}
	b := NewBot(api, &echoConv{}, logger.NewNop())

	runBot(t, b, func() bool { return len(api.sentTexts()) == 1 })
	assert.Equal(t, []string{textTryAgain}, api.sentTexts())
}

func TestBot_RetriesAfterPollingError(t *testing.T) {
	api := &fakeAPI{failGet: 1, batches: [][]Update{{msg(1, 3, "x")}}}
	b := NewBot(api, &echoConv{}, logger.NewNop())
	b.retryDelay = time.Millisecond

	runBot(t, b, func() bool { return len(api.sentTexts()) == 1 })
	assert.Equal(t, []string{"echo:x"}, api.sentTexts())
}

func TestDispatcher_FIFOPerKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDispatcher()
	ctx := context.Background()

	var mu sync.Mutex
	got := map[string][]int{}
	for i := 0; i < 50; i++ {
		for _, key := range []string{"u1", "u2", "u3"} {
			i, key := i, key
			d.Submit(ctx, key, func(context.Context) {
				mu.Lock()
				got[key] = append(got[key], i)
				mu.Unlock()
			})
		}
	}
	d.Wait()

	for _, key := range []string{"u1", "u2", "u3"} {
		require.Len(t, got[key], 50)
		for i, v := range got[key] {
			assert.Equal(t, i, v, "key %s", key)
		}
	}
	assert.Zero(t, d.active())
}
