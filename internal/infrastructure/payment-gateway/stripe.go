package paymentgateway

import (
	"context"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

type StripeGateway struct {
	client     *session.Client
	successURL string
	cancelURL  string
}

func CreateStripeGateway(conf config.PaymentConfig) *StripeGateway {
	return &StripeGateway{
		client: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: conf.StripeSecretKey,
		},
		successURL: conf.SuccessURL,
		cancelURL:  conf.CancelURL,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	params := g.sessionParams(req)
	params.Context = ctx

	s, err := g.client.New(params)
	if err != nil {
		return Session{}, fmt.Errorf("creating stripe checkout session: %w", err)
	}

	return Session{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) sessionParams(req SessionRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.ImageURL != "" {
			productData.Images = []*string{stripe.String(item.ImageURL)}
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(g.successURL),
		CancelURL:          stripe.String(g.cancelURL),
	}

	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	return params
}
