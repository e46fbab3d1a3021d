package admin

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/pricing"
)

// Surface groups the operator-only controls: sale phase flags, discount code
// registration and whitelist management. Authorization is enforced at the
// transport layer and again by the contract itself; the surface only performs
// local input validation before submitting.
type Surface struct {
	gw    gateway.Gateway
	codes *pricing.Registry
}

// NewSurface wires the admin control surface.
func NewSurface(gw gateway.Gateway, codes *pricing.Registry) *Surface {
	return &Surface{gw: gw, codes: codes}
}

// SetSaleActive toggles the global sale flag and waits for confirmation.
func (s *Surface) SetSaleActive(ctx context.Context, active bool) (common.Hash, error) {
	return s.confirm(ctx, "sale_active", func() (gateway.PendingTx, error) {
		return s.gw.SetSaleActive(ctx, active)
	})
}

// SetEarlyBirdActive toggles the early-bird phase flag.
func (s *Surface) SetEarlyBirdActive(ctx context.Context, active bool) (common.Hash, error) {
	return s.confirm(ctx, "early_bird_active", func() (gateway.PendingTx, error) {
		return s.gw.SetEarlyBirdActive(ctx, active)
	})
}

// SetWhitelistActive toggles the whitelist phase flag.
func (s *Surface) SetWhitelistActive(ctx context.Context, active bool) (common.Hash, error) {
	return s.confirm(ctx, "whitelist_active", func() (gateway.PendingTx, error) {
		return s.gw.SetWhitelistActive(ctx, active)
	})
}

// SetEventCancelled toggles the event-cancelled flag. Cancellation closes
// purchasing regardless of the other flags; reverting it reopens whatever
// the other flags allow.
func (s *Surface) SetEventCancelled(ctx context.Context, cancelled bool) (common.Hash, error) {
	return s.confirm(ctx, "event_cancelled", func() (gateway.PendingTx, error) {
		return s.gw.SetEventCancelled(ctx, cancelled)
	})
}

// GetSalePhaseFlags reads the live flag state.
func (s *Surface) GetSalePhaseFlags(ctx context.Context) (domain.SalePhaseFlags, error) {
	return s.gw.GetSalePhaseFlags(ctx)
}

// RegisterDiscountCode validates the code locally, writes it to the ledger
// and records it in the session registry once confirmed. An out-of-range
// percentage is rejected before any network access.
func (s *Surface) RegisterDiscountCode(ctx context.Context, code domain.DiscountCode) (common.Hash, error) {
	if err := code.Validate(); err != nil {
		return common.Hash{}, err
	}

	hash, err := s.confirm(ctx, "discount_code", func() (gateway.PendingTx, error) {
		return s.gw.AddDiscountCode(ctx, code.Code, code.Percentage)
	})
	if err != nil {
		return common.Hash{}, err
	}

	if err := s.codes.Register(code); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// DiscountCodes lists the codes registered this session.
func (s *Surface) DiscountCodes() []domain.DiscountCode {
	return s.codes.Codes()
}

// AddToWhitelist adds an address to the contract whitelist. A malformed
// address is rejected before any network access.
func (s *Surface) AddToWhitelist(ctx context.Context, address string) (common.Hash, error) {
	if !domain.IsValidAddress(address) {
		return common.Hash{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return s.confirm(ctx, "whitelist_add", func() (gateway.PendingTx, error) {
		return s.gw.AddToWhitelist(ctx, address)
	})
}

// RemoveFromWhitelist removes an address from the contract whitelist.
func (s *Surface) RemoveFromWhitelist(ctx context.Context, address string) (common.Hash, error) {
	if !domain.IsValidAddress(address) {
		return common.Hash{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return s.confirm(ctx, "whitelist_remove", func() (gateway.PendingTx, error) {
		return s.gw.RemoveFromWhitelist(ctx, address)
	})
}

// IsWhitelisted checks live whitelist membership.
func (s *Surface) IsWhitelisted(ctx context.Context, address string) (bool, error) {
	if !domain.IsValidAddress(address) {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return s.gw.IsWhitelisted(ctx, address)
}

// confirm submits a write and blocks until it is included.
func (s *Surface) confirm(ctx context.Context, op string, submit func() (gateway.PendingTx, error)) (common.Hash, error) {
	pending, err := submit()
	if err != nil {
		return common.Hash{}, err
	}
	if err := pending.Wait(ctx); err != nil {
		return common.Hash{}, err
	}

	logger.InfoCtx(ctx, "Admin operation confirmed",
		zap.String("operation", op),
		zap.String("tx_hash", pending.Hash().Hex()))
	return pending.Hash(), nil
}
