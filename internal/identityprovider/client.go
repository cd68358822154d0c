// Package identityprovider реализует клиент внешнего провайдера идентификации.
// Одноразовый exchange id обменивается на подтвержденные данные пользователя.
package identityprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRejected возвращается, когда провайдер не принял exchange id.
var ErrRejected = errors.New("identityprovider: session rejected")

// SessionData — подтвержденные провайдером данные пользователя.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type Client struct {
	sessionDataURL string
	httpClient     *http.Client
}

// NewClient создаёт клиент провайдера идентификации.
func NewClient(sessionDataURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		sessionDataURL: sessionDataURL,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// Exchange выполняет один запрос к провайдеру с exchange id в заголовке
// X-Session-ID. Любой статус, кроме 200, трактуется как отклоненный id.
func (c *Client) Exchange(ctx context.Context, exchangeID string) (*SessionData, error) {
	const op = "identityprovider.Exchange"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionDataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("X-Session-ID", exchangeID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", op, ErrRejected)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &data, nil
}
