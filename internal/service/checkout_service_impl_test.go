package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/checkout"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	paymentgateway "github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	gateway := &MockGateway{Session: paymentgateway.Session{ID: "cs_test_1", URL: "https://pay.example/cs_test_1"}}
	svc := CreateCheckoutService(checkout.Builder{ShippingChargeMinor: 75}, gateway, "")

	req := dto.CheckoutRequest{Products: []dto.CheckoutItem{
		{Product: &dto.CheckoutProduct{ID: "p1", ProductName: "Lamp", ProductPrice: json.RawMessage(`"19.99"`)}, Quantity: 2},
	}}

	resp, err := svc.CreateCheckoutSession(context.Background(), req, "idem-1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", resp.ID)

	require.Len(t, gateway.Requests, 1)
	sent := gateway.Requests[0]
	assert.Equal(t, "usd", sent.Currency)
	assert.Equal(t, "idem-1", sent.IdempotencyKey)
	require.Len(t, sent.Items, 2)
	assert.EqualValues(t, 1999, sent.Items[0].UnitAmount)
	assert.Equal(t, checkout.ShippingLineName, sent.Items[1].Name)
}

func TestCreateCheckoutSession_InvalidPriceNeverReachesGateway(t *testing.T) {
	gateway := &MockGateway{}
	svc := CreateCheckoutService(checkout.Builder{}, gateway, "idr")

	req := dto.CheckoutRequest{Products: []dto.CheckoutItem{
		{Product: &dto.CheckoutProduct{ID: "p1", ProductPrice: json.RawMessage(`"abc"`)}, Quantity: 1},
	}}

	_, err := svc.CreateCheckoutSession(context.Background(), req, "")
	assert.ErrorIs(t, err, errs.ErrInvalidLineItem)
	assert.Contains(t, err.Error(), "p1")
	assert.Empty(t, gateway.Requests)
}
