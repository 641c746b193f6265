package checkout

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, name, price string, qty int64) dto.CheckoutItem {
	return dto.CheckoutItem{
		Product: &dto.CheckoutProduct{
			ID:           id,
			ProductName:  name,
			ProductPrice: json.RawMessage(price),
			Image:        dto.CheckoutImage{URL: "https://img.example/" + id},
		},
		Quantity: qty,
	}
}

func TestBuild_WidgetWithShipping(t *testing.T) {
	b := Builder{ShippingChargeMinor: 75}

	items, err := b.Build([]dto.CheckoutItem{entry("p1", "Widget", "19.99", 2)})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, LineItem{ProductID: "p1", Name: "Widget", ImageURL: "https://img.example/p1", UnitAmount: 1999, Quantity: 2}, items[0])
	assert.Equal(t, LineItem{Name: ShippingLineName, UnitAmount: 75, Quantity: 1}, items[1])
	gross, err := GrossAmount(items)
	require.NoError(t, err)
	assert.Equal(t, int64(1999*2+75), gross)
}

func TestBuild_PreservesInputOrder(t *testing.T) {
	b := Builder{}

	items, err := b.Build([]dto.CheckoutItem{
		entry("c", "Third", "3", 1),
		entry("a", "First", "1", 1),
		entry("b", "Second", `"2.50"`, 4),
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, []string{"c", "a", "b"}, []string{items[0].ProductID, items[1].ProductID, items[2].ProductID})
	assert.Equal(t, int64(250), items[2].UnitAmount)
}

func TestBuild_NoShippingWhenDisabled(t *testing.T) {
	items, err := Builder{ShippingChargeMinor: 0}.Build([]dto.CheckoutItem{entry("p1", "Widget", "1", 1)})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBuild_InvalidEntryFailsWholeRequest(t *testing.T) {
	type TestCase struct {
		Name        string
		Entries     []dto.CheckoutItem
		ExpectedErr error
		Contains    string
	}

	testCases := []TestCase{
		{
			Name:        "non numeric price",
			Entries:     []dto.CheckoutItem{entry("ok", "Fine", "5", 1), entry("bad", "Broken", `"abc"`, 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "product ID bad (entry 1)",
		},
		{
			Name:        "missing price",
			Entries:     []dto.CheckoutItem{entry("nop", "Nothing", "", 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "price is missing",
		},
		{
			Name:        "null price",
			Entries:     []dto.CheckoutItem{entry("nul", "Null", "null", 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
		},
		{
			Name:        "NaN string",
			Entries:     []dto.CheckoutItem{entry("nan", "NaN", `"NaN"`, 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
		},
		{
			Name:        "negative price",
			Entries:     []dto.CheckoutItem{entry("neg", "Negative", "-1", 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
		},
		{
			Name:        "zero quantity",
			Entries:     []dto.CheckoutItem{entry("zero", "Zero", "1", 0)},
			ExpectedErr: errs.ErrInvalidLineItem,
		},
		{
			Name:        "price beyond int64 after scaling",
			Entries:     []dto.CheckoutItem{entry("huge", "Huge", "1e17", 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "out of range",
		},
		{
			Name:        "price far beyond int64",
			Entries:     []dto.CheckoutItem{entry("huger", "Huger", `"1e30"`, 1)},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "product ID huger (entry 0)",
		},
		{
			Name:        "line total overflows",
			Entries:     []dto.CheckoutItem{entry("many", "Many", "1000", math.MaxInt64/1000)},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "line total overflows",
		},
		{
			Name: "gross amount overflows",
			Entries: []dto.CheckoutItem{
				entry("a", "Half", "1", math.MaxInt64/200),
				entry("b", "Half", "1", math.MaxInt64/200),
				entry("c", "Half", "1", math.MaxInt64/200),
			},
			ExpectedErr: errs.ErrInvalidLineItem,
			Contains:    "overflows",
		},
		{
			Name:        "missing product object",
			Entries:     []dto.CheckoutItem{{Quantity: 1}},
			ExpectedErr: errs.ErrUnsupportedPayload,
		},
		{
			Name:        "empty cart",
			Entries:     nil,
			ExpectedErr: errs.ErrUnsupportedPayload,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			items, err := Builder{ShippingChargeMinor: 75}.Build(tc.Entries)
			assert.Nil(t, items)
			require.ErrorIs(t, err, tc.ExpectedErr)
			if tc.Contains != "" {
				assert.Contains(t, err.Error(), tc.Contains)
			}
		})
	}
}

func TestMinorUnits(t *testing.T) {
	type TestCase struct {
		Raw      string
		Expected int64
	}

	testCases := []TestCase{
		{Raw: "19.99", Expected: 1999},
		{Raw: "0.1", Expected: 10},
		{Raw: "1.005", Expected: 101},
		{Raw: "1.004", Expected: 100},
		{Raw: `"12"`, Expected: 1200},
		{Raw: `" 7.5 "`, Expected: 750},
		{Raw: "1e2", Expected: 10000},
		{Raw: "0", Expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			got, err := MinorUnits(json.RawMessage(tc.Raw))
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestMinorUnits_LargestRepresentablePrice(t *testing.T) {
	got, err := MinorUnits(json.RawMessage("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = MinorUnits(json.RawMessage("92233720368547758.08"))
	assert.ErrorContains(t, err, "out of range")
}

func TestGrossAmount_Overflow(t *testing.T) {
	_, err := GrossAmount([]LineItem{
		{UnitAmount: math.MaxInt64, Quantity: 1},
		{UnitAmount: 1, Quantity: 1},
	})
	assert.ErrorIs(t, err, errAmountOverflow)

	_, err = GrossAmount([]LineItem{{UnitAmount: math.MaxInt64 / 2, Quantity: 3}})
	assert.ErrorIs(t, err, errAmountOverflow)
}
