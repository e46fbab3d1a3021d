package gateway

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/adapter"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

// Config holds the gateway configuration.
type Config struct {
	// ContractAddress is the deployed Evento contract
	ContractAddress string
	// ReceiptPollMaxInterval caps the confirmation poll backoff
	ReceiptPollMaxInterval time.Duration
}

// Gateway exposes every contract read and write as a typed operation. Writes
// are bound to the current signer through the wallet session and return
// pending-submission handles; the gateway itself performs no business
// validation beyond constructing a well-formed call
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// GetSalePhaseFlags reads the four global sale phase flags
	GetSalePhaseFlags(ctx context.Context) (domain.SalePhaseFlags, error)

	// GetTicketTypes reads the full ticket table
	GetTicketTypes(ctx context.Context) ([]domain.TicketType, error)

	// IsWhitelisted reads live whitelist membership for an address
	IsWhitelisted(ctx context.Context, address string) (bool, error)

	// SetSaleActive toggles the sale flag
	SetSaleActive(ctx context.Context, active bool) (PendingTx, error)

	// SetEarlyBirdActive toggles the early-bird flag
	SetEarlyBirdActive(ctx context.Context, active bool) (PendingTx, error)

	// SetWhitelistActive toggles the whitelist flag
	SetWhitelistActive(ctx context.Context, active bool) (PendingTx, error)

	// SetEventCancelled toggles the event-cancelled flag
	SetEventCancelled(ctx context.Context, cancelled bool) (PendingTx, error)

	// WriteAllTicketTypes overwrites the entire ticket table
	WriteAllTicketTypes(ctx context.Context, tickets []domain.TicketType) (PendingTx, error)

	// AddDiscountCode registers a discount code
	AddDiscountCode(ctx context.Context, code string, percentage uint8) (PendingTx, error)

	// AddToWhitelist adds an address to the whitelist
	AddToWhitelist(ctx context.Context, address string) (PendingTx, error)

	// RemoveFromWhitelist removes an address from the whitelist
	RemoveFromWhitelist(ctx context.Context, address string) (PendingTx, error)

	// PurchaseTickets submits a payable purchase with the given attached value
	PurchaseTickets(ctx context.Context, ticketTypeID int, quantity uint64, discountCode string, value *big.Int) (PendingTx, error)

	// Close stops the session watch loop
	Close()
}

type client struct {
	backend  adapter.EthBackend
	session  *wallet.Session
	contract common.Address
	abi      abi.ABI
	pollMax  time.Duration

	mu      sync.Mutex
	pending []*pendingTx

	cancelSub func()
}

// New creates a gateway bound to the configured contract. It subscribes to
// the wallet session so a chain identity change invalidates every
// outstanding pending handle.
func New(cfg Config, backend adapter.EthBackend, session *wallet.Session) (Gateway, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: contract address %q", domain.ErrInvalidAddress, cfg.ContractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(eventoABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	c := &client{
		backend:  backend,
		session:  session,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
		pollMax:  cfg.ReceiptPollMaxInterval,
	}

	if session != nil {
		events, cancel := session.Subscribe()
		c.cancelSub = cancel
		go c.watchSession(events)
	}

	return c, nil
}

// watchSession invalidates outstanding handles when the chain identity
// changes. Account swaps do not invalidate handles: an already submitted
// transaction stays valid under its original signer.
func (c *client) watchSession(events <-chan wallet.SessionEvent) {
	for ev := range events {
		if ev.Kind != wallet.SessionChainChanged {
			continue
		}

		c.mu.Lock()
		count := len(c.pending)
		for _, p := range c.pending {
			p.invalidate()
		}
		c.pending = nil
		c.mu.Unlock()

		if count > 0 {
			logger.Warn("Invalidated pending transaction handles after chain change", zap.Int("count", count))
		}
	}
}

func (c *client) Close() {
	if c.cancelSub != nil {
		c.cancelSub()
	}
}

// call executes a read-only contract method and unpacks the result into out.
func (c *client) call(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	result, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("%s call failed: %w", method, err)
	}

	if err := c.abi.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return nil
}

func (c *client) GetSalePhaseFlags(ctx context.Context) (domain.SalePhaseFlags, error) {
	var flags domain.SalePhaseFlags

	reads := []struct {
		method string
		out    *bool
	}{
		{"saleActive", &flags.SaleActive},
		{"earlyBirdActive", &flags.EarlyBirdActive},
		{"whitelistActive", &flags.WhitelistActive},
		{"eventCancelled", &flags.EventCancelled},
	}
	for _, r := range reads {
		if err := c.call(ctx, r.method, r.out); err != nil {
			return domain.SalePhaseFlags{}, err
		}
	}
	return flags, nil
}

func (c *client) GetTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	var records []ticketTypeRecord
	if err := c.call(ctx, "getTicketTypes", &records); err != nil {
		return nil, err
	}

	tickets := make([]domain.TicketType, 0, len(records))
	for i, rec := range records {
		ticket, err := recordToTicket(i, rec)
		if err != nil {
			return nil, fmt.Errorf("malformed ticket record at index %d: %w", i, err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (c *client) IsWhitelisted(ctx context.Context, address string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	var whitelisted bool
	if err := c.call(ctx, "isWhitelisted", &whitelisted, common.HexToAddress(address)); err != nil {
		return false, err
	}
	return whitelisted, nil
}

func (c *client) SetSaleActive(ctx context.Context, active bool) (PendingTx, error) {
	return c.submit(ctx, "setSaleActive", nil, active)
}

func (c *client) SetEarlyBirdActive(ctx context.Context, active bool) (PendingTx, error) {
	return c.submit(ctx, "setEarlyBirdActive", nil, active)
}

func (c *client) SetWhitelistActive(ctx context.Context, active bool) (PendingTx, error) {
	return c.submit(ctx, "setWhitelistActive", nil, active)
}

func (c *client) SetEventCancelled(ctx context.Context, cancelled bool) (PendingTx, error) {
	return c.submit(ctx, "setEventCancelled", nil, cancelled)
}

func (c *client) WriteAllTicketTypes(ctx context.Context, tickets []domain.TicketType) (PendingTx, error) {
	records := make([]ticketTypeRecord, 0, len(tickets))
	for _, t := range tickets {
		records = append(records, ticketToRecord(t))
	}
	return c.submit(ctx, "writeAllTicketTypes", nil, records)
}

func (c *client) AddDiscountCode(ctx context.Context, code string, percentage uint8) (PendingTx, error) {
	return c.submit(ctx, "addDiscountCode", nil, code, new(big.Int).SetUint64(uint64(percentage)))
}

func (c *client) AddToWhitelist(ctx context.Context, address string) (PendingTx, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return c.submit(ctx, "addToWhitelist", nil, common.HexToAddress(address))
}

func (c *client) RemoveFromWhitelist(ctx context.Context, address string) (PendingTx, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return c.submit(ctx, "removeFromWhitelist", nil, common.HexToAddress(address))
}

func (c *client) PurchaseTickets(ctx context.Context, ticketTypeID int, quantity uint64, discountCode string, value *big.Int) (PendingTx, error) {
	return c.submit(ctx, "purchaseTickets", value,
		big.NewInt(int64(ticketTypeID)),
		new(big.Int).SetUint64(quantity),
		discountCode)
}

// submit signs and sends a state-changing call, returning a pending handle.
// Submission-time refusals (estimation or send failures) map to
// domain.ErrTransactionRejected; execution-level failures surface later from
// PendingTx.Wait as domain.ErrTransactionReverted.
func (c *client) submit(ctx context.Context, method string, value *big.Int, args ...interface{}) (PendingTx, error) {
	opts, err := c.session.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, opts.From)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  opts.From,
		To:    &c.contract,
		Value: value,
		Data:  data,
	})
	if err != nil {
		// Estimation fails when the call would not succeed, e.g. a failed
		// precondition or insufficient attached value.
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransactionRejected, method, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas + gas/5, // headroom over the estimate
		To:       &c.contract,
		Value:    value,
		Data:     data,
	})

	signed, err := opts.Signer(opts.From, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s transaction: %w", method, err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransactionRejected, method, err)
	}

	p := newPendingTx(signed.Hash(), c.backend, c.pollMax)
	c.mu.Lock()
	c.pending = append(c.pending, p)
	c.mu.Unlock()

	logger.Debug("Submitted transaction",
		zap.String("method", method),
		zap.String("tx_hash", signed.Hash().Hex()))
	return p, nil
}

// recordToTicket validates the wire shape of one ticket row before it is
// handed to the catalog cache or pricing resolver.
func recordToTicket(index int, rec ticketTypeRecord) (domain.TicketType, error) {
	for _, p := range []*big.Int{rec.MaxSupply, rec.CurrentSupply, rec.Price, rec.EarlyBirdPrice, rec.WhitelistPrice} {
		if p == nil || p.Sign() < 0 {
			return domain.TicketType{}, fmt.Errorf("negative or missing numeric field")
		}
	}
	if !rec.MaxSupply.IsUint64() || !rec.CurrentSupply.IsUint64() {
		return domain.TicketType{}, fmt.Errorf("supply out of range")
	}

	return domain.TicketType{
		ID:             index,
		Name:           rec.Name,
		MaxSupply:      rec.MaxSupply.Uint64(),
		CurrentSupply:  rec.CurrentSupply.Uint64(),
		Price:          new(big.Int).Set(rec.Price),
		EarlyBirdPrice: new(big.Int).Set(rec.EarlyBirdPrice),
		WhitelistPrice: new(big.Int).Set(rec.WhitelistPrice),
		Active:         rec.Active,
	}, nil
}

func ticketToRecord(t domain.TicketType) ticketTypeRecord {
	return ticketTypeRecord{
		Name:           t.Name,
		MaxSupply:      new(big.Int).SetUint64(t.MaxSupply),
		CurrentSupply:  new(big.Int).SetUint64(t.CurrentSupply),
		Price:          t.Price,
		EarlyBirdPrice: t.EarlyBirdPrice,
		WhitelistPrice: t.WhitelistPrice,
		Active:         t.Active,
	}
}
