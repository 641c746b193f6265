package paymentgateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/sony/gobreaker/v2"
)

type BreakerGateway struct {
	next Gateway
	cb   *gobreaker.CircuitBreaker[Session]
}

func WithCircuitBreaker(next Gateway, cb *gobreaker.CircuitBreaker[Session]) *BreakerGateway {
	return &BreakerGateway{next: next, cb: cb}
}

func (g *BreakerGateway) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	s, err := g.cb.Execute(func() (Session, error) {
		return g.next.CreateSession(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Session{}, fmt.Errorf("%w: %v", errs.ErrPaymentGatewayBusy, err)
	}

	return s, err
}
