package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dieuclat/storefront/internal/entity"
)

// ChargeRequest asks the gateway to take Amount for the order OrderRef.
type ChargeRequest struct {
	Amount   entity.Money
	OrderRef string
}

// ChargeResult is the gateway's answer. Reason explains a decline.
type ChargeResult struct {
	Authorized bool
	Reference  string
	Reason     string
}

// PaymentGateway is the external payment collaborator. Implementations must
// return once ctx is done.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// PaymentGatewayFunc adapts a function to PaymentGateway.
type PaymentGatewayFunc func(ctx context.Context, req ChargeRequest) (ChargeResult, error)

func (f PaymentGatewayFunc) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	return f(ctx, req)
}

// SimulatedGateway approves every charge after Delay. It stands in for a
// real gateway during development.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ChargeResult{}, ctx.Err()
	case <-timer.C:
	}

	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return ChargeResult{Authorized: true, Reference: "SIM-" + ref}, nil
}
