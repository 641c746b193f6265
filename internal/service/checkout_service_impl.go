package service

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/checkout"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	paymentgateway "github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/payment-gateway"
	"github.com/rs/zerolog/log"
)

type CheckoutServiceImpl struct {
	builder  checkout.Builder
	gateway  paymentgateway.Gateway
	currency string
}

func CreateCheckoutService(builder checkout.Builder, gateway paymentgateway.Gateway, currency string) CheckoutService {
	if currency == "" {
		currency = "usd"
	}

	return &CheckoutServiceImpl{builder: builder, gateway: gateway, currency: currency}
}

// CreateCheckoutSession prices the submitted cart and opens a hosted payment
// session for it. A repeated idempotencyKey resolves to the session created
// first.
func (s *CheckoutServiceImpl) CreateCheckoutSession(ctx context.Context, req dto.CheckoutRequest, idempotencyKey string) (resp dto.CheckoutResponse, err error) {
	items, err := s.builder.Build(req.Products)
	if err != nil {
		return
	}

	session, err := s.gateway.CreateSession(ctx, paymentgateway.SessionRequest{
		Items:          items,
		Currency:       s.currency,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		gross, _ := checkout.GrossAmount(items)
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateCheckoutSession").Int64("gross_amount", gross).Msg("")
		return
	}

	return dto.CheckoutResponse{ID: session.ID, URL: session.URL}, nil
}
