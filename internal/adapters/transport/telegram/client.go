package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-triage/internal/domain/intake"
	"pet-triage/internal/platform/httpclient"
)

const DefaultAPIBaseURL = "https://api.telegram.org"

var ErrAPI = errors.New("telegram api error")

// Client habla con la Bot API usando httpclient.DoJSON.
type Client struct {
	http        *httpclient.Client
	token       string
	pollTimeout time.Duration
}

// NewClient arma el cliente. El timeout HTTP cubre el long polling más un margen.
func NewClient(baseURL, token string, pollTimeout time.Duration) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("telegram: empty token")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultAPIBaseURL
	}
	if pollTimeout < 0 {
		pollTimeout = 0
	}
	hc, err := httpclient.New(baseURL, pollTimeout+10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Client{http: hc, token: token, pollTimeout: pollTimeout}, nil
}

// GetUpdates hace long polling desde offset (update_id del siguiente update esperado).
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	var updates []Update
	req := getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(c.pollTimeout / time.Second),
		AllowedUpdates: []string{"message"},
	}
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage envía un mensaje del intake, con teclado de respuesta si trae opciones.
func (c *Client) SendMessage(ctx context.Context, chatID int64, msg intake.Message) error {
	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        msg.Text,
		ReplyMarkup: replyMarkup(msg),
	}, nil)
}

func (c *Client) call(ctx context.Context, method string, in, out any) error {
	var resp apiResponse
	err := c.http.PostJSON(ctx, "/bot"+c.token+"/"+method, in, &resp)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) {
			// el body trae la descripción de la Bot API; el token nunca va al error
			return fmt.Errorf("%w: %s: status=%d", ErrAPI, method, se.StatusCode)
		}
		return fmt.Errorf("telegram %s: %w", method, redact(err, c.token))
	}
	if !resp.OK {
		return fmt.Errorf("%w: %s: %d %s", ErrAPI, method, resp.ErrorCode, resp.Description)
	}
	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("telegram %s: decode result: %w", method, err)
	}
	return nil
}

func replyMarkup(msg intake.Message) any {
	if len(msg.Keyboard) > 0 {
		rows := make([][]KeyboardButton, 0, len(msg.Keyboard))
		for _, row := range msg.Keyboard {
			buttons := make([]KeyboardButton, 0, len(row))
			for _, label := range row {
				buttons = append(buttons, KeyboardButton{Text: label})
			}
			rows = append(rows, buttons)
		}
		return ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
	}
	if msg.RemoveKeyboard {
		return ReplyKeyboardRemove{RemoveKeyboard: true}
	}
	return nil
}

// redact saca el token de errores de transporte (url.Error incluye la URL completa).
func redact(err error, token string) error {
	if err == nil || token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "***"))
}
