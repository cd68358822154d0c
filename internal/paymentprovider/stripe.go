// Package paymentprovider реализует клиент платежного провайдера Stripe:
// создание checkout-сессий, опрос статуса и проверку подписи вебхуков.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// SessionParams — параметры создания checkout-сессии.
// Сумма передается в минорных единицах валюты (центах) и вычисляется
// исключительно на стороне сервера.
type SessionParams struct {
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// SessionInfo — результат создания checkout-сессии.
type SessionInfo struct {
	SessionID string
	URL       string
}

// StatusInfo — состояние checkout-сессии по данным провайдера.
type StatusInfo struct {
	SessionID     string
	Status        string // Стадия workflow: open, complete, expired
	PaymentStatus string // Состояние оплаты: unpaid, paid, no_payment_required
	AmountTotal   int64  // Сумма в центах
	Currency      string
	Metadata      map[string]string
}

// Client — обертка над stripe SDK.
type Client struct {
	api           *client.API
	webhookSecret string
}

// NewClient создает клиент Stripe с заданными ключами.
func NewClient(secretKey, webhookSecret string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

// CreateSession открывает checkout-сессию в режиме разовой оплаты.
// Метаданные провайдер возвращает без изменений при опросе статуса и в вебхуках.
func (c *Client) CreateSession(ctx context.Context, p SessionParams) (*SessionInfo, error) {
	const op = "paymentprovider.CreateSession"

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &SessionInfo{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// GetStatus возвращает текущее состояние checkout-сессии.
func (c *Client) GetStatus(ctx context.Context, sessionID string) (*StatusInfo, error) {
	const op = "paymentprovider.GetStatus"

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return statusFromSession(sess), nil
}

// VerifyWebhook проверяет подпись вебхука и возвращает состояние
// checkout-сессии из события. Для событий, не относящихся к checkout-сессиям,
// возвращает nil без ошибки.
func (c *Client) VerifyWebhook(payload []byte, signature string) (*StatusInfo, error) {
	const op = "paymentprovider.VerifyWebhook"

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch event.Type {
	case "checkout.session.completed",
		"checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed",
		"checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return statusFromSession(&sess), nil
	default:
		return nil, nil
	}
}

func statusFromSession(sess *stripe.CheckoutSession) *StatusInfo {
	return &StatusInfo{
		SessionID:     sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}
}
