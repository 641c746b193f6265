package paymentgateway

import (
	"context"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/checkout"
)

type SessionRequest struct {
	Items    []checkout.LineItem
	Currency string
	// IdempotencyKey makes retried submissions resolve to the same session.
	// Empty means every call creates a new session.
	IdempotencyKey string
}

type Session struct {
	ID  string
	URL string
}

type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
}

// CreateGateway picks the gateway named in the payment config.
func CreateGateway(conf *config.Config) (Gateway, error) {
	switch conf.PaymentConfig.Gateway {
	case "stripe":
		return CreateStripeGateway(conf.PaymentConfig), nil
	case "midtrans":
		g, err := CreateMidtransGateway(conf.PaymentConfig, conf.Environment)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", conf.PaymentConfig.Gateway)
	}
}
