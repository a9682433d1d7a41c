package stripepay

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PaymentIntents API Stripe
type Client struct {
	api *client.API
	log Logger
}

// NewClient создает клиент с ключом secretKey
func NewClient(secretKey string, log Logger) *Client {
	return NewClientWithBackends(secretKey, nil, log)
}

// NewClientWithBackends создает клиент с собственными backend (тесты, stripe-mock)
func NewClientWithBackends(secretKey string, backends *stripe.Backends, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &Client{api: api, log: log}
}

// CreatePaymentIntent создает платеж на сумму в центах.
// Повтор с тем же IdempotencyKey возвращает тот же платеж.
func (c *Client) CreatePaymentIntent(ctx context.Context, in CreateIntentParams) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.AmountCents),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}
	for key, value := range in.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("Stripe: failed to create payment intent amount=%d %s: %v", in.AmountCents, in.Currency, err)
		return nil, mapError(err)
	}

	c.log.Info("Stripe: created payment intent id=%s amount=%d %s", intent.ID, intent.Amount, intent.Currency)
	return fromStripe(intent), nil
}

// GetPaymentIntent получает платеж по ID
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, mapError(err)
	}

	return fromStripe(intent), nil
}

func fromStripe(intent *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		Metadata:     intent.Metadata,
	}
}

// mapError переводит ошибки Stripe в ошибки пакета
func mapError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	switch {
	case stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound:
		return ErrPaymentIntentNotFound
	case stripeErr.HTTPStatusCode == http.StatusBadRequest || stripeErr.HTTPStatusCode == http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, stripeErr.Msg)
	default:
		return fmt.Errorf("%w: stripe status %d: %s", ErrInternal, stripeErr.HTTPStatusCode, stripeErr.Msg)
	}
}
