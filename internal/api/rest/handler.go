package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/evento-live/evento-gateway/internal/admin"
	"github.com/evento-live/evento-gateway/internal/catalog"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/purchase"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// ListTickets returns the active ticket types from the current catalog
	// snapshot, fetching one when none is held
	// GET /api/v1/tickets
	ListTickets(c *gin.Context)

	// GetSaleFlags returns the live sale phase flags
	// GET /api/v1/sale
	GetSaleFlags(c *gin.Context)

	// ConnectSession requests wallet access and establishes the session
	// POST /api/v1/session/connect
	ConnectSession(c *gin.Context)

	// DisconnectSession clears the wallet session
	// POST /api/v1/session/disconnect
	DisconnectSession(c *gin.Context)

	// GetSession returns the wallet session state
	// GET /api/v1/session
	GetSession(c *gin.Context)

	// Quote prices an order without submitting anything
	// POST /api/v1/quote
	Quote(c *gin.Context)

	// Purchase submits a purchase and waits for confirmation
	// POST /api/v1/purchase
	Purchase(c *gin.Context)

	// CheckWhitelist returns live whitelist membership for an address
	// GET /api/v1/whitelist/:address
	CheckWhitelist(c *gin.Context)

	// SetSaleActive toggles the sale flag
	// PUT /api/v1/admin/flags/sale
	SetSaleActive(c *gin.Context)

	// SetEarlyBirdActive toggles the early-bird flag
	// PUT /api/v1/admin/flags/early-bird
	SetEarlyBirdActive(c *gin.Context)

	// SetWhitelistActive toggles the whitelist flag
	// PUT /api/v1/admin/flags/whitelist
	SetWhitelistActive(c *gin.Context)

	// SetEventCancelled toggles the event-cancelled flag
	// PUT /api/v1/admin/flags/cancelled
	SetEventCancelled(c *gin.Context)

	// GetCatalog returns the working snapshot including uncommitted edits
	// GET /api/v1/admin/catalog
	GetCatalog(c *gin.Context)

	// RefreshCatalog re-fetches the catalog, discarding local edits
	// POST /api/v1/admin/catalog/refresh
	RefreshCatalog(c *gin.Context)

	// EditTicket applies a local edit to one ticket row
	// PATCH /api/v1/admin/catalog/tickets/:id
	EditTicket(c *gin.Context)

	// AddTicket appends a new ticket row locally
	// POST /api/v1/admin/catalog/tickets
	AddTicket(c *gin.Context)

	// CommitCatalog writes the whole working snapshot to the ledger
	// POST /api/v1/admin/catalog/commit
	CommitCatalog(c *gin.Context)

	// RegisterDiscountCode registers a discount code
	// POST /api/v1/admin/discount-codes
	RegisterDiscountCode(c *gin.Context)

	// ListDiscountCodes lists the codes registered this session
	// GET /api/v1/admin/discount-codes
	ListDiscountCodes(c *gin.Context)

	// AddToWhitelist adds an address to the contract whitelist
	// POST /api/v1/admin/whitelist
	AddToWhitelist(c *gin.Context)

	// RemoveFromWhitelist removes an address from the contract whitelist
	// DELETE /api/v1/admin/whitelist/:address
	RemoveFromWhitelist(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	session      *wallet.Session
	cache        *catalog.Cache
	orchestrator *purchase.Orchestrator
	surface      *admin.Surface
}

// NewHandler creates a new REST API handler
func NewHandler(session *wallet.Session, cache *catalog.Cache, orchestrator *purchase.Orchestrator, surface *admin.Surface) Handler {
	return &handler{
		session:      session,
		cache:        cache,
		orchestrator: orchestrator,
		surface:      surface,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListTickets returns the active ticket types from the current catalog snapshot
func (h *handler) ListTickets(c *gin.Context) {
	snap, ok := h.cache.Snapshot()
	if !ok {
		var err error
		snap, err = h.cache.Refresh(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
	}

	// The storefront only shows purchasable rows; inactive rows stay
	// visible through the admin catalog.
	dto := toSnapshotDTO(snap)
	active := make([]TicketDTO, 0, len(dto.Tickets))
	for _, t := range dto.Tickets {
		if t.Active {
			active = append(active, t)
		}
	}
	dto.Tickets = active
	c.JSON(http.StatusOK, dto)
}

// GetSaleFlags returns the live sale phase flags
func (h *handler) GetSaleFlags(c *gin.Context) {
	flags, err := h.surface.GetSalePhaseFlags(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlagsDTO(flags))
}

// ConnectSession requests wallet access and establishes the session
func (h *handler) ConnectSession(c *gin.Context) {
	account, err := h.session.Connect(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionDTO{State: string(h.session.State()), Account: account})
}

// DisconnectSession clears the wallet session
func (h *handler) DisconnectSession(c *gin.Context) {
	h.session.Disconnect()
	c.JSON(http.StatusOK, SessionDTO{State: string(h.session.State())})
}

// GetSession returns the wallet session state
func (h *handler) GetSession(c *gin.Context) {
	dto := SessionDTO{State: string(h.session.State())}
	if account, ok := h.session.Account(); ok {
		dto.Account = account
	}
	c.JSON(http.StatusOK, dto)
}

// Quote prices an order without submitting anything
func (h *handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	quote, err := h.orchestrator.Quote(c.Request.Context(), req.TicketTypeID, req.DiscountCode)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteDTO(quote))
}

// Purchase submits a purchase and waits for confirmation
func (h *handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	receipt, err := h.orchestrator.Purchase(c.Request.Context(), req.TicketTypeID, req.Quantity, req.DiscountCode)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReceiptDTO(receipt))
}

// CheckWhitelist returns live whitelist membership for an address
func (h *handler) CheckWhitelist(c *gin.Context) {
	address := c.Param("address")
	whitelisted, err := h.surface.IsWhitelisted(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": domain.NormalizeAddress(address), "whitelisted": whitelisted})
}

// SetSaleActive toggles the sale flag
func (h *handler) SetSaleActive(c *gin.Context) {
	h.setFlag(c, h.surface.SetSaleActive)
}

// SetEarlyBirdActive toggles the early-bird flag
func (h *handler) SetEarlyBirdActive(c *gin.Context) {
	h.setFlag(c, h.surface.SetEarlyBirdActive)
}

// SetWhitelistActive toggles the whitelist flag
func (h *handler) SetWhitelistActive(c *gin.Context) {
	h.setFlag(c, h.surface.SetWhitelistActive)
}

// SetEventCancelled toggles the event-cancelled flag
func (h *handler) SetEventCancelled(c *gin.Context) {
	h.setFlag(c, h.surface.SetEventCancelled)
}

// GetCatalog returns the working snapshot including uncommitted edits
func (h *handler) GetCatalog(c *gin.Context) {
	snap, ok := h.cache.Snapshot()
	if !ok {
		respondWithError(c, http.StatusConflict, errCodeConflict, "No catalog snapshot held, refresh first")
		return
	}
	c.JSON(http.StatusOK, toSnapshotDTO(snap))
}

// RefreshCatalog re-fetches the catalog, discarding local edits
func (h *handler) RefreshCatalog(c *gin.Context) {
	snap, err := h.cache.Refresh(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotDTO(snap))
}

// EditTicket applies a local edit to one ticket row
func (h *handler) EditTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid ticket id", err.Error())
		return
	}

	var req TicketEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	patch, err := toTicketPatch(req)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.cache.ApplyLocalEdit(id, patch); err != nil {
		respondDomainError(c, err)
		return
	}

	snap, _ := h.cache.Snapshot()
	c.JSON(http.StatusOK, toSnapshotDTO(snap))
}

// AddTicket appends a new ticket row locally
func (h *handler) AddTicket(c *gin.Context) {
	var req TicketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ticket, err := toNewTicket(req)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	id, err := h.cache.AddLocalNew(ticket)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	snap, _ := h.cache.Snapshot()
	c.JSON(http.StatusCreated, gin.H{"id": id, "snapshot": toSnapshotDTO(snap)})
}

// CommitCatalog writes the whole working snapshot to the ledger
func (h *handler) CommitCatalog(c *gin.Context) {
	result, err := h.cache.Commit(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, CommitResultDTO{
		TxHash:      result.TxHash.Hex(),
		BaseVersion: result.BaseVersion,
		Outcome:     string(result.Outcome),
		Snapshot:    toSnapshotDTO(result.Snapshot),
	})
}

// RegisterDiscountCode registers a discount code
func (h *handler) RegisterDiscountCode(c *gin.Context) {
	var req DiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	hash, err := h.surface.RegisterDiscountCode(c.Request.Context(), domain.DiscountCode{
		Code:       req.Code,
		Percentage: req.Percentage,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, TxHashDTO{TxHash: hash.Hex()})
}

// ListDiscountCodes lists the codes registered this session
func (h *handler) ListDiscountCodes(c *gin.Context) {
	codes := h.surface.DiscountCodes()
	out := make([]DiscountCodeDTO, 0, len(codes))
	for _, code := range codes {
		out = append(out, DiscountCodeDTO{Code: code.Code, Percentage: code.Percentage})
	}
	c.JSON(http.StatusOK, gin.H{"discount_codes": out})
}

// AddToWhitelist adds an address to the contract whitelist
func (h *handler) AddToWhitelist(c *gin.Context) {
	var req WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	hash, err := h.surface.AddToWhitelist(c.Request.Context(), req.Address)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, TxHashDTO{TxHash: hash.Hex()})
}

// RemoveFromWhitelist removes an address from the contract whitelist
func (h *handler) RemoveFromWhitelist(c *gin.Context) {
	hash, err := h.surface.RemoveFromWhitelist(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, TxHashDTO{TxHash: hash.Hex()})
}

// setFlag is the shared body of the four flag toggles.
func (h *handler) setFlag(c *gin.Context, op func(ctx context.Context, active bool) (common.Hash, error)) {
	var req FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	hash, err := op(c.Request.Context(), req.Active)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, TxHashDTO{TxHash: hash.Hex()})
}
