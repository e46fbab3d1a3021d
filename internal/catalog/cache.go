package catalog

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/adapter"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
)

// Snapshot is a point-in-time immutable copy of the ticket catalog. Every
// consumer holds its own snapshot reference; the cache never hands out live
// mutating state.
type Snapshot struct {
	// Version identifies the snapshot; commits carry the version they were
	// built from
	Version string
	// FetchedAt is when the snapshot's base data was read from the ledger
	FetchedAt time.Time
	// Tickets is the ticket table, base data plus any local edits
	Tickets []domain.TicketType
	// Dirty reports whether local edits exist that have not been committed
	Dirty bool
}

// clone deep-copies the snapshot.
func (s *Snapshot) clone() *Snapshot {
	if s == nil {
		return nil
	}
	tickets := make([]domain.TicketType, 0, len(s.Tickets))
	for _, t := range s.Tickets {
		tickets = append(tickets, t.Clone())
	}
	return &Snapshot{Version: s.Version, FetchedAt: s.FetchedAt, Tickets: tickets, Dirty: s.Dirty}
}

// TicketPatch is a partial update applied to one ticket row locally. Nil
// fields are left unchanged. CurrentSupply is not patchable: it is
// ledger-owned supply accounting.
type TicketPatch struct {
	Name           *string
	MaxSupply      *uint64
	Price          *big.Int
	EarlyBirdPrice *big.Int
	WhitelistPrice *big.Int
	Active         *bool
}

// CommitOutcome distinguishes how a commit landed relative to concurrent
// writers.
type CommitOutcome string

const (
	// CommitApplied means the post-commit fetch matches what was committed
	CommitApplied CommitOutcome = "applied"

	// CommitConcurrentWriter means the post-commit fetch differs from what
	// was committed: another session's write landed around ours. The ledger
	// offers no compare-and-swap, so this is detection, not prevention.
	CommitConcurrentWriter CommitOutcome = "concurrent_writer"
)

// CommitResult reports a confirmed catalog commit.
type CommitResult struct {
	TxHash      common.Hash
	BaseVersion string
	Outcome     CommitOutcome
	Snapshot    *Snapshot
}

// Cache mirrors the ledger's ticket table with support for optimistic local
// edits and explicit bulk commit. It is safe for concurrent readers; all
// mutation goes through Refresh, ApplyLocalEdit, AddLocalNew and Commit.
type Cache struct {
	gw    gateway.Gateway
	clock adapter.Clock

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache creates an empty catalog cache. Callers must Refresh before the
// catalog is usable.
func NewCache(gw gateway.Gateway, clock adapter.Clock) *Cache {
	return &Cache{gw: gw, clock: clock}
}

// Refresh replaces the cache with a fresh full-set fetch, discarding all
// pending local edits. This is a full overwrite, never a merge.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	tickets, err := c.gw.GetTicketTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFetchFailed, err)
	}

	snap := &Snapshot{
		Version:   uuid.NewString(),
		FetchedAt: c.clock.Now(),
		Tickets:   tickets,
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	logger.Debug("Catalog refreshed",
		zap.String("version", snap.Version),
		zap.Int("tickets", len(tickets)))
	return snap.clone(), nil
}

// Snapshot returns a copy of the current snapshot, or false when nothing has
// been fetched yet (or the cache was invalidated).
func (c *Cache) Snapshot() (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return nil, false
	}
	return c.snap.clone(), true
}

// ApplyLocalEdit patches one ticket row in memory. The edit is unobserved by
// other sessions until Commit.
func (c *Cache) ApplyLocalEdit(id int, patch TicketPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap == nil {
		return domain.ErrCatalogFetchFailed
	}
	if id < 0 || id >= len(c.snap.Tickets) {
		return fmt.Errorf("%w: id %d", domain.ErrUnknownTicket, id)
	}

	t := &c.snap.Tickets[id]
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.MaxSupply != nil {
		t.MaxSupply = *patch.MaxSupply
	}
	if patch.Price != nil {
		t.Price = new(big.Int).Set(patch.Price)
	}
	if patch.EarlyBirdPrice != nil {
		t.EarlyBirdPrice = new(big.Int).Set(patch.EarlyBirdPrice)
	}
	if patch.WhitelistPrice != nil {
		t.WhitelistPrice = new(big.Int).Set(patch.WhitelistPrice)
	}
	if patch.Active != nil {
		t.Active = *patch.Active
	}
	c.snap.Dirty = true
	return nil
}

// AddLocalNew appends a new ticket row in memory and returns its positional
// id. New rows always start with zero current supply.
func (c *Cache) AddLocalNew(ticket domain.TicketType) (int, error) {
	ticket.CurrentSupply = 0
	if err := ticket.Validate(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap == nil {
		return 0, domain.ErrCatalogFetchFailed
	}

	ticket.ID = len(c.snap.Tickets)
	c.snap.Tickets = append(c.snap.Tickets, ticket.Clone())
	c.snap.Dirty = true
	return ticket.ID, nil
}

// Commit writes the entire current snapshot (edited, unedited and newly
// added rows) to the ledger, waits for confirmation, then refreshes. The
// commit carries the snapshot version it was built from; the result reports
// whether the post-commit fetch matches what was committed or a concurrent
// writer landed around it.
func (c *Cache) Commit(ctx context.Context) (*CommitResult, error) {
	c.mu.RLock()
	base := c.snap.clone()
	c.mu.RUnlock()

	if base == nil {
		return nil, fmt.Errorf("%w: nothing to commit", domain.ErrCatalogFetchFailed)
	}

	for _, t := range base.Tickets {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("ticket %d: %w", t.ID, err)
		}
	}

	pending, err := c.gw.WriteAllTicketTypes(ctx, base.Tickets)
	if err != nil {
		return nil, err
	}
	if err := pending.Wait(ctx); err != nil {
		return nil, err
	}

	fresh, err := c.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	outcome := CommitApplied
	if !ticketsEqual(base.Tickets, fresh.Tickets) {
		outcome = CommitConcurrentWriter
		logger.Warn("Catalog commit overlapped with a concurrent writer",
			zap.String("base_version", base.Version),
			zap.String("tx_hash", pending.Hash().Hex()))
	}

	return &CommitResult{
		TxHash:      pending.Hash(),
		BaseVersion: base.Version,
		Outcome:     outcome,
		Snapshot:    fresh,
	}, nil
}

// Invalidate discards the snapshot and all pending local edits. Called on
// chain identity changes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	had := c.snap != nil
	c.snap = nil
	c.mu.Unlock()

	if had {
		logger.Warn("Catalog cache invalidated")
	}
}

func ticketsEqual(a, b []domain.TicketType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
