package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

// IPaymentGateway abstracts external payment processors (Stripe, Mercado Pago).
//
// ParseCallback verifies the callback signature before decoding anything and
// returns ErrInvalidCallbackSignature when verification fails.
type IPaymentGateway interface {
	Name() string
	CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	FetchStatus(ctx context.Context, p entities.Payment) (entities.GatewayStatus, error)
	ParseCallback(ctx context.Context, cb entities.GatewayCallback) (entities.GatewayEvent, error)
}
