package purchase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/catalog"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/pricing"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

// Receipt reports a confirmed purchase.
type Receipt struct {
	TxHash     common.Hash
	Tier       domain.Tier
	UnitPrice  *big.Int
	TotalValue *big.Int
	Quantity   uint64

	// SupplyWarning is set when the local snapshot suggested the remaining
	// supply could not cover the quantity. The purchase was submitted anyway;
	// the contract's own accounting decided.
	SupplyWarning bool
}

// Orchestrator drives the end-to-end purchase flow: resolve the ticket from
// the catalog, fetch live phase flags and whitelist membership, price the
// order, submit the payable call and wait for confirmation.
type Orchestrator struct {
	session *wallet.Session
	gw      gateway.Gateway
	cache   *catalog.Cache
	codes   pricing.CodeSource
}

// NewOrchestrator wires the purchase flow dependencies.
func NewOrchestrator(session *wallet.Session, gw gateway.Gateway, cache *catalog.Cache, codes pricing.CodeSource) *Orchestrator {
	return &Orchestrator{session: session, gw: gw, cache: cache, codes: codes}
}

// Quote prices an order without submitting anything. It reads live phase
// flags and whitelist membership but performs no write.
func (o *Orchestrator) Quote(ctx context.Context, ticketTypeID int, discountCode string) (*pricing.Quote, error) {
	ticket, err := o.lookupTicket(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	flags, err := o.gw.GetSalePhaseFlags(ctx)
	if err != nil {
		return nil, err
	}

	whitelisted := false
	if account, ok := o.session.Account(); ok && flags.WhitelistActive {
		whitelisted, err = o.gw.IsWhitelisted(ctx, account)
		if err != nil {
			return nil, err
		}
	}

	return pricing.Resolve(ticket, flags, whitelisted, discountCode, o.codes)
}

// Purchase executes a purchase and blocks until the transaction confirms.
// Local validation failures return before any network access.
func (o *Orchestrator) Purchase(ctx context.Context, ticketTypeID int, quantity uint64, discountCode string) (*Receipt, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity %d", domain.ErrInvalidQuantity, quantity)
	}

	account, ok := o.session.Account()
	if !ok {
		return nil, domain.ErrNotConnected
	}

	ticket, err := o.lookupTicket(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	flags, err := o.gw.GetSalePhaseFlags(ctx)
	if err != nil {
		return nil, err
	}

	whitelisted := false
	if flags.WhitelistActive {
		whitelisted, err = o.gw.IsWhitelisted(ctx, account)
		if err != nil {
			return nil, err
		}
	}

	quote, err := pricing.Resolve(ticket, flags, whitelisted, discountCode, o.codes)
	if err != nil {
		return nil, err
	}

	total := new(big.Int).Mul(quote.UnitPrice, new(big.Int).SetUint64(quantity))

	// The snapshot's supply figures may be stale, so a shortfall here is a
	// warning rather than a refusal. The contract enforces real supply.
	supplyWarning := ticket.Remaining() < quantity
	if supplyWarning {
		logger.WarnCtx(ctx, "Snapshot supply may not cover the requested quantity",
			zap.Int("ticket_type_id", ticketTypeID),
			zap.Uint64("remaining", ticket.Remaining()),
			zap.Uint64("quantity", quantity))
	}

	pending, err := o.gw.PurchaseTickets(ctx, ticketTypeID, quantity, discountCode, total)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Purchase submitted",
		zap.String("tx_hash", pending.Hash().Hex()),
		zap.Int("ticket_type_id", ticketTypeID),
		zap.Uint64("quantity", quantity),
		zap.String("tier", string(quote.Tier)))

	if err := pending.Wait(ctx); err != nil {
		return nil, err
	}

	// Confirmed purchases change supply, so refresh the catalog. A failed
	// refresh does not fail the purchase.
	if _, err := o.cache.Refresh(ctx); err != nil {
		logger.WarnCtx(ctx, "Catalog refresh after purchase failed", zap.Error(err))
	}

	return &Receipt{
		TxHash:        pending.Hash(),
		Tier:          quote.Tier,
		UnitPrice:     quote.UnitPrice,
		TotalValue:    total,
		Quantity:      quantity,
		SupplyWarning: supplyWarning,
	}, nil
}

// lookupTicket resolves a ticket from the current snapshot, refreshing first
// when no snapshot is held.
func (o *Orchestrator) lookupTicket(ctx context.Context, ticketTypeID int) (domain.TicketType, error) {
	snap, ok := o.cache.Snapshot()
	if !ok {
		var err error
		snap, err = o.cache.Refresh(ctx)
		if err != nil {
			return domain.TicketType{}, err
		}
	}

	if ticketTypeID < 0 || ticketTypeID >= len(snap.Tickets) {
		return domain.TicketType{}, fmt.Errorf("%w: id %d", domain.ErrUnknownTicket, ticketTypeID)
	}
	return snap.Tickets[ticketTypeID], nil
}
