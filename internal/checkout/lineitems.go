// Package checkout turns cart rows into the priced line items a payment
// gateway session is created from.
package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/shopspring/decimal"
)

const ShippingLineName = "Shipping Charge"

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// LineItem is a single priced entry. UnitAmount is in minor currency units.
type LineItem struct {
	ProductID  string
	Name       string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

func (l LineItem) Total() int64 {
	return l.UnitAmount * l.Quantity
}

type Builder struct {
	// ShippingChargeMinor is appended as a final flat line when positive.
	ShippingChargeMinor int64
}

// Build maps entries to line items in input order. Any entry with a missing,
// non-numeric or negative price, or a non-positive quantity, fails the whole
// build and nothing is returned. So does a cart whose line totals or gross
// amount do not fit in an int64.
func (b Builder) Build(entries []dto.CheckoutItem) ([]LineItem, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no products to check out", errs.ErrUnsupportedPayload)
	}

	items := make([]LineItem, 0, len(entries)+1)
	for i, entry := range entries {
		if entry.Product == nil {
			return nil, fmt.Errorf("%w: entry %d has no productId object", errs.ErrUnsupportedPayload, i)
		}

		unitAmount, err := MinorUnits(entry.Product.ProductPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product price for product ID %s (entry %d): %v",
				errs.ErrInvalidLineItem, entry.Product.ID, i, err)
		}

		if entry.Quantity <= 0 {
			return nil, fmt.Errorf("%w: invalid quantity %d for product ID %s (entry %d)",
				errs.ErrInvalidLineItem, entry.Quantity, entry.Product.ID, i)
		}

		if unitAmount > 0 && entry.Quantity > math.MaxInt64/unitAmount {
			return nil, fmt.Errorf("%w: line total overflows for product ID %s (entry %d)",
				errs.ErrInvalidLineItem, entry.Product.ID, i)
		}

		items = append(items, LineItem{
			ProductID:  entry.Product.ID,
			Name:       entry.Product.ProductName,
			ImageURL:   entry.Product.Image.URL,
			UnitAmount: unitAmount,
			Quantity:   entry.Quantity,
		})
	}

	if b.ShippingChargeMinor > 0 {
		items = append(items, LineItem{
			Name:       ShippingLineName,
			UnitAmount: b.ShippingChargeMinor,
			Quantity:   1,
		})
	}

	if _, err := GrossAmount(items); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidLineItem, err)
	}

	return items, nil
}

// MinorUnits converts a decimal price, given as a JSON number or numeric
// string, to round(price * 100). Halves round away from zero.
func MinorUnits(raw json.RawMessage) (int64, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, fmt.Errorf("price is missing")
	}

	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("price %s is not a string: %w", text, err)
		}
		text = strings.TrimSpace(s)
	}

	price, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("price %q is not numeric", text)
	}

	if price.IsNegative() {
		return 0, fmt.Errorf("price %s is negative", price)
	}

	minor := price.Mul(hundred).Round(0)
	if minor.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("price %s is out of range", price)
	}

	return minor.IntPart(), nil
}

var errAmountOverflow = errors.New("gross amount overflows int64 minor units")

// GrossAmount sums every line's total. Negative amounts and quantities are
// not expected here; Build never produces them.
func GrossAmount(items []LineItem) (int64, error) {
	var total int64
	for _, item := range items {
		if item.UnitAmount != 0 && item.Quantity > math.MaxInt64/item.UnitAmount {
			return 0, errAmountOverflow
		}
		line := item.Total()
		if total > math.MaxInt64-line {
			return 0, errAmountOverflow
		}
		total += line
	}

	return total, nil
}
