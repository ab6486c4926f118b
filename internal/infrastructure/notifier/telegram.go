package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Destination is the credential pair identifying one chat.
type Destination struct {
	Token  string
	ChatID string
}

// Configured reports whether both halves of the pair are present.
func (d Destination) Configured() bool {
	return strings.TrimSpace(d.Token) != "" && strings.TrimSpace(d.ChatID) != ""
}

// TelegramNotifier posts plain-text messages to the Bot API sendMessage method.
type TelegramNotifier struct {
	baseURL string
	client  *http.Client
}

func NewTelegramNotifier(baseURL string, timeout time.Duration) *TelegramNotifier {
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Send makes exactly one delivery attempt. Any transport failure or non-2xx
// reply is returned; callers on the submission path discard it.
func (n *TelegramNotifier) Send(ctx context.Context, dest Destination, text string) error {
	form := url.Values{}
	form.Set("chat_id", dest.ChatID)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, dest.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", redactToken(err, dest.Token))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram responded %d", resp.StatusCode)
	}
	return nil
}

// url.Error embeds the full request URL, which carries the bot token.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), token, "<redacted>"))
}
