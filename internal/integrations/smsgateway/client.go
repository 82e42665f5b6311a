package smsgateway

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

const statusRejected = "rejected"

// Client клиент HTTP-шлюза SMS/WhatsApp
type Client struct {
	url        string
	apiKey     string
	sender     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(url, apiKey, sender string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		sender: sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет одно сообщение. Повторных попыток нет
func (c *Client) Send(ctx context.Context, to, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}

	payload, err := json.Marshal(SendRequest{To: to, Body: body, Sender: c.sender})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Пустое тело при 2xx считаем успехом
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	var result SendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if strings.EqualFold(result.Status, statusRejected) {
		return fmt.Errorf("%w: %s", ErrRejected, result.Error)
	}

	c.log.Info("Message accepted by gateway: to=%s, id=%s", to, result.ID)
	return nil
}

// LogSender отправитель-заглушка: только пишет сообщение в лог
// Используется, когда notifications.enabled = false
type LogSender struct {
	log Logger
}

func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, to, body string) error {
	s.log.Info("Notification (not sent, gateway disabled): to=%s, body=%q", to, body)
	return nil
}
