package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func validOrderRequest() dto.OrderRequest {
	return dto.OrderRequest{
		Email:         "ana@example.com",
		FirstName:     "Ana",
		LastName:      "Silva",
		Contact:       "0800",
		Address:       "Block C",
		Street:        "Main St",
		City:          "Lisbon",
		Postal:        "1000",
		PaymentMethod: "card",
	}
}

func TestCreateOrder(t *testing.T) {
	repo := &MockOrderRepository{}
	publisher := &MockPublisher{}
	var sent []*gomail.Message
	sender := func(m *gomail.Message) error {
		sent = append(sent, m)
		return nil
	}
	svc := CreateOrderService(repo, publisher, config.SMTPConfig{Host: "smtp.example.com", Sender: "shop@example.com"}, sender)

	resp, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.EqualValues(t, 1, resp.ID)
	_, err = ulid.Parse(resp.ReferenceNumber)
	assert.NoError(t, err)
	assert.False(t, resp.CreatedAt.IsZero())
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, sent[0].GetHeader("To"))
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, dto.EventOrderCreated, publisher.Events[0].EventType)
	assert.Equal(t, resp.ReferenceNumber, publisher.Events[0].Key)
}

func TestCreateOrder_MailFailureDoesNotFailOrder(t *testing.T) {
	repo := &MockOrderRepository{}
	sender := func(*gomail.Message) error { return errors.New("dial tcp: refused") }
	svc := CreateOrderService(repo, &MockPublisher{}, config.SMTPConfig{Host: "smtp.example.com", Sender: "shop@example.com"}, sender)

	_, err := svc.CreateOrder(context.Background(), validOrderRequest())
	assert.NoError(t, err)
	assert.Len(t, repo.Added, 1)
}

func TestCreateOrder_Invalid(t *testing.T) {
	repo := &MockOrderRepository{}
	svc := CreateOrderService(repo, &MockPublisher{}, config.SMTPConfig{}, nil)

	req := validOrderRequest()
	req.Email = ""
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, errs.ErrClient)
	assert.Empty(t, repo.Added)
}
