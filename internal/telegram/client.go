// Package telegram adapts the Bot API library to the two calls the reminder
// bot needs: reading recent updates and sending text.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second
)

type Client struct {
	bot        *tgbotapi.BotAPI
	httpClient *http.Client
}

type options struct {
	baseURL string
	timeout time.Duration
}

type Option func(*options)

// WithBaseURL points the client at another Bot API server, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// New builds the client without calling getMe, so a bot that cannot reach
// Telegram at boot still starts and retries on the next cycle.
func New(token string, opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := &http.Client{Timeout: o.timeout}
	bot := &tgbotapi.BotAPI{
		Token:  token,
		Client: httpClient,
		Buffer: 100,
	}
	bot.SetAPIEndpoint(o.baseURL + "/bot%s/%s")

	return &Client{bot: bot, httpClient: httpClient}
}

// GetUpdates fetches the pending updates of the bot.
func (c *Client) GetUpdates(ctx context.Context) ([]tgbotapi.Update, error) {
	updates, err := c.withContext(ctx).GetUpdates(tgbotapi.NewUpdate(0))
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates failed: %w", err)
	}
	return updates, nil
}

// SendMessage posts a plain text message to chatID.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if _, err := c.withContext(ctx).Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}

// withContext returns a copy of the bot whose requests are bound to ctx.
func (c *Client) withContext(ctx context.Context) *tgbotapi.BotAPI {
	bot := *c.bot
	bot.Client = &contextDoer{ctx: ctx, client: c.httpClient}
	return &bot
}

type contextDoer struct {
	ctx    context.Context
	client *http.Client
}

func (d *contextDoer) Do(req *http.Request) (*http.Response, error) {
	res, err := d.client.Do(req.WithContext(d.ctx))
	if err != nil {
		// url.Error carries the request URL, which embeds the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, urlErr.Err
		}
		return nil, err
	}
	return res, nil
}
