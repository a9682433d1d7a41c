package stripepay

import "errors"

var (
	// ErrPaymentIntentNotFound возвращается, когда платеж не найден в Stripe
	ErrPaymentIntentNotFound = errors.New("payment intent not found")

	// ErrInvalidRequest возвращается, когда Stripe отклонил параметры запроса
	ErrInvalidRequest = errors.New("stripe client: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента и недоступности Stripe
	ErrInternal = errors.New("stripe client: internal error")
)
