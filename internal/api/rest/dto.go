package rest

import (
	"fmt"
	"math/big"
	"time"

	"github.com/evento-live/evento-gateway/internal/catalog"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/pricing"
	"github.com/evento-live/evento-gateway/internal/purchase"
)

// TicketDTO is the REST representation of one ticket type. Prices carry both
// the exact wei amount and the ether rendering for display.
type TicketDTO struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	MaxSupply         uint64 `json:"max_supply"`
	CurrentSupply     uint64 `json:"current_supply"`
	Remaining         uint64 `json:"remaining"`
	PriceWei          string `json:"price_wei"`
	PriceEth          string `json:"price_eth"`
	EarlyBirdPriceWei string `json:"early_bird_price_wei"`
	EarlyBirdPriceEth string `json:"early_bird_price_eth"`
	WhitelistPriceWei string `json:"whitelist_price_wei"`
	WhitelistPriceEth string `json:"whitelist_price_eth"`
	Active            bool   `json:"active"`
}

// SnapshotDTO is the REST representation of a catalog snapshot.
type SnapshotDTO struct {
	Version   string      `json:"version"`
	FetchedAt time.Time   `json:"fetched_at"`
	Dirty     bool        `json:"dirty"`
	Tickets   []TicketDTO `json:"tickets"`
}

// FlagsDTO is the REST representation of the sale phase flags.
type FlagsDTO struct {
	SaleActive      bool `json:"sale_active"`
	EarlyBirdActive bool `json:"early_bird_active"`
	WhitelistActive bool `json:"whitelist_active"`
	EventCancelled  bool `json:"event_cancelled"`
}

// SessionDTO is the REST representation of the wallet session state.
type SessionDTO struct {
	State   string `json:"state"`
	Account string `json:"account,omitempty"`
}

// QuoteDTO is the REST representation of a resolved price quote.
type QuoteDTO struct {
	Tier               string `json:"tier"`
	BasePriceWei       string `json:"base_price_wei"`
	BasePriceEth       string `json:"base_price_eth"`
	UnitPriceWei       string `json:"unit_price_wei"`
	UnitPriceEth       string `json:"unit_price_eth"`
	DiscountCode       string `json:"discount_code,omitempty"`
	DiscountPercentage uint8  `json:"discount_percentage,omitempty"`
}

// ReceiptDTO is the REST representation of a confirmed purchase.
type ReceiptDTO struct {
	TxHash        string `json:"tx_hash"`
	Tier          string `json:"tier"`
	UnitPriceWei  string `json:"unit_price_wei"`
	TotalValueWei string `json:"total_value_wei"`
	TotalValueEth string `json:"total_value_eth"`
	Quantity      uint64 `json:"quantity"`
	SupplyWarning bool   `json:"supply_warning"`
}

// CommitResultDTO is the REST representation of a catalog commit.
type CommitResultDTO struct {
	TxHash      string      `json:"tx_hash"`
	BaseVersion string      `json:"base_version"`
	Outcome     string      `json:"outcome"`
	Snapshot    SnapshotDTO `json:"snapshot"`
}

// DiscountCodeDTO is the REST representation of a discount code.
type DiscountCodeDTO struct {
	Code       string `json:"code"`
	Percentage uint8  `json:"percentage"`
}

// PurchaseRequest is the purchase submission payload.
type PurchaseRequest struct {
	TicketTypeID int    `json:"ticket_type_id"`
	Quantity     uint64 `json:"quantity"`
	DiscountCode string `json:"discount_code"`
}

// QuoteRequest is the quote payload.
type QuoteRequest struct {
	TicketTypeID int    `json:"ticket_type_id"`
	DiscountCode string `json:"discount_code"`
}

// TicketEditRequest is a partial ticket update. Prices are ether-denominated
// decimal strings; omitted fields are left unchanged.
type TicketEditRequest struct {
	Name              *string `json:"name"`
	MaxSupply         *uint64 `json:"max_supply"`
	PriceEth          *string `json:"price_eth"`
	EarlyBirdPriceEth *string `json:"early_bird_price_eth"`
	WhitelistPriceEth *string `json:"whitelist_price_eth"`
	Active            *bool   `json:"active"`
}

// TicketCreateRequest is a new ticket row. All prices are required,
// ether-denominated decimal strings.
type TicketCreateRequest struct {
	Name              string `json:"name" binding:"required"`
	MaxSupply         uint64 `json:"max_supply"`
	PriceEth          string `json:"price_eth" binding:"required"`
	EarlyBirdPriceEth string `json:"early_bird_price_eth" binding:"required"`
	WhitelistPriceEth string `json:"whitelist_price_eth" binding:"required"`
	Active            bool   `json:"active"`
}

// DiscountCodeRequest is the discount code registration payload.
type DiscountCodeRequest struct {
	Code       string `json:"code" binding:"required"`
	Percentage uint8  `json:"percentage" binding:"required"`
}

// WhitelistRequest is the whitelist add payload.
type WhitelistRequest struct {
	Address string `json:"address" binding:"required"`
}

// FlagRequest is the phase flag toggle payload.
type FlagRequest struct {
	Active bool `json:"active"`
}

// TxHashDTO wraps a confirmed transaction hash.
type TxHashDTO struct {
	TxHash string `json:"tx_hash"`
}

func toTicketDTO(t domain.TicketType) TicketDTO {
	return TicketDTO{
		ID:                t.ID,
		Name:              t.Name,
		MaxSupply:         t.MaxSupply,
		CurrentSupply:     t.CurrentSupply,
		Remaining:         t.Remaining(),
		PriceWei:          weiString(t.Price),
		PriceEth:          domain.FormatEther(t.Price),
		EarlyBirdPriceWei: weiString(t.EarlyBirdPrice),
		EarlyBirdPriceEth: domain.FormatEther(t.EarlyBirdPrice),
		WhitelistPriceWei: weiString(t.WhitelistPrice),
		WhitelistPriceEth: domain.FormatEther(t.WhitelistPrice),
		Active:            t.Active,
	}
}

func toSnapshotDTO(s *catalog.Snapshot) SnapshotDTO {
	tickets := make([]TicketDTO, 0, len(s.Tickets))
	for _, t := range s.Tickets {
		tickets = append(tickets, toTicketDTO(t))
	}
	return SnapshotDTO{
		Version:   s.Version,
		FetchedAt: s.FetchedAt,
		Dirty:     s.Dirty,
		Tickets:   tickets,
	}
}

func toFlagsDTO(f domain.SalePhaseFlags) FlagsDTO {
	return FlagsDTO{
		SaleActive:      f.SaleActive,
		EarlyBirdActive: f.EarlyBirdActive,
		WhitelistActive: f.WhitelistActive,
		EventCancelled:  f.EventCancelled,
	}
}

func toQuoteDTO(q *pricing.Quote) QuoteDTO {
	return QuoteDTO{
		Tier:               string(q.Tier),
		BasePriceWei:       weiString(q.BasePrice),
		BasePriceEth:       domain.FormatEther(q.BasePrice),
		UnitPriceWei:       weiString(q.UnitPrice),
		UnitPriceEth:       domain.FormatEther(q.UnitPrice),
		DiscountCode:       q.Discount.Code,
		DiscountPercentage: q.Discount.Percentage,
	}
}

func toReceiptDTO(r *purchase.Receipt) ReceiptDTO {
	return ReceiptDTO{
		TxHash:        r.TxHash.Hex(),
		Tier:          string(r.Tier),
		UnitPriceWei:  weiString(r.UnitPrice),
		TotalValueWei: weiString(r.TotalValue),
		TotalValueEth: domain.FormatEther(r.TotalValue),
		Quantity:      r.Quantity,
		SupplyWarning: r.SupplyWarning,
	}
}

// toTicketPatch converts an edit request into a catalog patch, parsing the
// ether-denominated price strings into wei.
func toTicketPatch(req TicketEditRequest) (catalog.TicketPatch, error) {
	patch := catalog.TicketPatch{
		Name:      req.Name,
		MaxSupply: req.MaxSupply,
		Active:    req.Active,
	}

	var err error
	if patch.Price, err = parseOptionalEther(req.PriceEth); err != nil {
		return catalog.TicketPatch{}, err
	}
	if patch.EarlyBirdPrice, err = parseOptionalEther(req.EarlyBirdPriceEth); err != nil {
		return catalog.TicketPatch{}, err
	}
	if patch.WhitelistPrice, err = parseOptionalEther(req.WhitelistPriceEth); err != nil {
		return catalog.TicketPatch{}, err
	}
	return patch, nil
}

// toNewTicket converts a create request into a ticket row.
func toNewTicket(req TicketCreateRequest) (domain.TicketType, error) {
	price, err := domain.ParseEther(req.PriceEth)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("price_eth: %w", err)
	}
	earlyBird, err := domain.ParseEther(req.EarlyBirdPriceEth)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("early_bird_price_eth: %w", err)
	}
	whitelist, err := domain.ParseEther(req.WhitelistPriceEth)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("whitelist_price_eth: %w", err)
	}

	return domain.TicketType{
		Name:           req.Name,
		MaxSupply:      req.MaxSupply,
		Price:          price,
		EarlyBirdPrice: earlyBird,
		WhitelistPrice: whitelist,
		Active:         req.Active,
	}, nil
}

func parseOptionalEther(s *string) (*big.Int, error) {
	if s == nil {
		return nil, nil
	}
	return domain.ParseEther(*s)
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
