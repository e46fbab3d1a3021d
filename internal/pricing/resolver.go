package pricing

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/evento-live/evento-gateway/internal/domain"
)

// CodeSource resolves discount codes known to this session. The ledger
// exposes no discount read, so resolution is backed by locally registered
// codes.
type CodeSource interface {
	// Lookup returns the discount for a code, or false when unknown
	Lookup(code string) (domain.DiscountCode, bool)
}

// Quote is the fully resolved price for one unit of a ticket type.
type Quote struct {
	// Tier is the price tier the buyer qualified for
	Tier domain.Tier
	// BasePrice is the tier price before any discount, in wei
	BasePrice *big.Int
	// UnitPrice is the final per-unit price after discount, in wei
	UnitPrice *big.Int
	// Discount is the applied discount code, zero-valued when none
	Discount domain.DiscountCode
}

// Resolve computes the effective unit price for a ticket under the given
// sale phase flags. It is a pure function of its inputs and performs no
// ledger access.
//
// Tier selection: early-bird pricing wins whenever the early-bird phase is
// open, otherwise whitelist pricing applies to whitelisted buyers while the
// whitelist phase is open, otherwise the regular price. A discount code
// applies on top of whichever tier was selected.
func Resolve(ticket domain.TicketType, flags domain.SalePhaseFlags, whitelisted bool, code string, codes CodeSource) (*Quote, error) {
	if flags.EventCancelled {
		return nil, fmt.Errorf("%w: event cancelled", domain.ErrPurchasingClosed)
	}
	if !flags.SaleActive {
		return nil, fmt.Errorf("%w: sale not active", domain.ErrPurchasingClosed)
	}
	if !ticket.Active {
		return nil, fmt.Errorf("%w: %s", domain.ErrTicketUnavailable, ticket.Name)
	}

	tier := domain.TierRegular
	switch {
	case flags.EarlyBirdActive:
		tier = domain.TierEarlyBird
	case flags.WhitelistActive && whitelisted:
		tier = domain.TierWhitelist
	}

	base := ticket.PriceForTier(tier)
	if base == nil {
		return nil, fmt.Errorf("%w: no %s price for %s", domain.ErrTicketUnavailable, tier, ticket.Name)
	}

	quote := &Quote{
		Tier:      tier,
		BasePrice: new(big.Int).Set(base),
		UnitPrice: new(big.Int).Set(base),
	}

	if code != "" {
		if codes == nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDiscountCode, code)
		}
		discount, ok := codes.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDiscountCode, code)
		}
		quote.Discount = discount
		quote.UnitPrice = discount.Apply(base)
	}

	return quote, nil
}

// Registry is an in-memory CodeSource populated from configuration seeds and
// from codes registered through the admin surface. Lookups are
// case-insensitive.
type Registry struct {
	mu    sync.RWMutex
	codes map[string]domain.DiscountCode
}

// NewRegistry creates a registry pre-seeded with the given codes. Invalid
// seeds are rejected.
func NewRegistry(seeds ...domain.DiscountCode) (*Registry, error) {
	r := &Registry{codes: make(map[string]domain.DiscountCode)}
	for _, seed := range seeds {
		if err := r.Register(seed); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds or replaces a discount code.
func (r *Registry) Register(code domain.DiscountCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[strings.ToLower(code.Code)] = code
	return nil
}

// Lookup implements CodeSource.
func (r *Registry) Lookup(code string) (domain.DiscountCode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codes[strings.ToLower(code)]
	return c, ok
}

// Codes returns all registered codes.
func (r *Registry) Codes() []domain.DiscountCode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DiscountCode, 0, len(r.codes))
	for _, c := range r.codes {
		out = append(out, c)
	}
	return out
}
