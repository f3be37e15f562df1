package gateway

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway creates payment orders with an external provider. The
// gateway is trusted only to mint order ids; signature verification of the
// completed payment happens in the payment service, not here.
type PaymentGateway interface {
	CreateOrder(amount decimal.Decimal, currency string) (orderID string, err error)
}

// DevGateway mints local order ids without calling any provider. Used in
// development and tests.
type DevGateway struct{}

func NewDevGateway() *DevGateway {
	return &DevGateway{}
}

func (g *DevGateway) CreateOrder(amount decimal.Decimal, currency string) (string, error) {
	return "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""), nil
}
