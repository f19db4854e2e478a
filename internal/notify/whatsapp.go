package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGraphBaseURL = "https://graph.facebook.com/v22.0"

// WhatsAppClient sends text messages through the WhatsApp Business Cloud API.
type WhatsAppClient struct {
	Token         string
	PhoneNumberID string
	BaseURL       string
	HTTP          *http.Client
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *WhatsAppClient) SendText(ctx context.Context, to, body string) error {
	base := c.BaseURL
	if base == "" {
		base = defaultGraphBaseURL
	}
	u := fmt.Sprintf("%s/%s/messages", base, c.PhoneNumberID)

	payload := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: body},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		var apiErr whatsAppError
		if jerr := json.Unmarshal(data, &apiErr); jerr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("whatsapp error: %s", strings.TrimSpace(string(data)))
	}
	return nil
}
