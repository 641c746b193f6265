package paymentgateway

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/checkout"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
)

const (
	// snap rejects item names longer than this
	midtransMaxItemName = 50
	midtransCurrency    = "idr"
)

type MidtransGateway struct {
	client *snap.Client
}

// CreateMidtransGateway fails unless the checkout currency is IDR, the only
// currency snap settles in.
func CreateMidtransGateway(conf config.PaymentConfig, environment string) (*MidtransGateway, error) {
	if !strings.EqualFold(conf.Currency, midtransCurrency) {
		return nil, fmt.Errorf("midtrans settles in IDR only, CHECKOUT_CURRENCY is %q", conf.Currency)
	}

	env := midtrans.Sandbox
	if environment == "production" {
		env = midtrans.Production
	}

	client := &snap.Client{}
	client.New(conf.MidtransServerKey, env)

	return &MidtransGateway{client: client}, nil
}

// CreateSession opens a snap transaction. The idempotency key doubles as the
// order id, which midtrans refuses to reuse.
func (g *MidtransGateway) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	if !strings.EqualFold(req.Currency, midtransCurrency) {
		return Session{}, fmt.Errorf("midtrans cannot charge in %q", req.Currency)
	}

	orderID := req.IdempotencyKey
	if orderID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return Session{}, fmt.Errorf("error generating order id: %w", err)
		}
		orderID = id.String()
	}

	snapReq, err := snapRequest(req.Items, orderID)
	if err != nil {
		return Session{}, err
	}

	resp, merr := g.client.CreateTransaction(snapReq)
	if merr != nil {
		return Session{}, fmt.Errorf("creating midtrans snap transaction: %w", merr)
	}

	return Session{ID: resp.Token, URL: resp.RedirectURL}, nil
}

// snapRequest converts minor-unit line items to whole rupiah, rounding each
// unit price half away from zero. GrossAmt is summed from the converted
// prices so it always equals the item total snap recomputes.
func snapRequest(items []checkout.LineItem, orderID string) (*snap.Request, error) {
	details := make([]midtrans.ItemDetails, 0, len(items))
	whole := make([]checkout.LineItem, 0, len(items))
	for i, item := range items {
		if item.Quantity > math.MaxInt32 {
			return nil, fmt.Errorf("%w: quantity %d of %q exceeds the midtrans limit", errs.ErrInvalidLineItem, item.Quantity, item.Name)
		}

		id := item.ProductID
		if id == "" {
			id = fmt.Sprintf("line-%d", i)
		}

		price := decimal.New(item.UnitAmount, -2).Round(0).IntPart()
		whole = append(whole, checkout.LineItem{UnitAmount: price, Quantity: item.Quantity})

		details = append(details, midtrans.ItemDetails{
			ID:    id,
			Name:  truncateRunes(item.Name, midtransMaxItemName),
			Price: price,
			Qty:   int32(item.Quantity),
		})
	}

	gross, err := checkout.GrossAmount(whole)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidLineItem, err)
	}

	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		Items: &details,
	}, nil
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
