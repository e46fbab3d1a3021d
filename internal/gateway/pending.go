package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/evento-live/evento-gateway/internal/adapter"
	"github.com/evento-live/evento-gateway/internal/domain"
)

// HandleState is the lifecycle state of a pending-submission handle.
type HandleState string

const (
	// HandleActive means the submission may still confirm
	HandleActive HandleState = "active"

	// HandleInvalidated means a chain identity change cancelled the handle
	// before it resolved
	HandleInvalidated HandleState = "invalidated"
)

// PendingTx is a pending-submission handle returned by every gateway write.
// It resolves only after the ledger confirms inclusion
//
//go:generate mockgen -source=pending.go -destination=../mocks/pending.go -package=mocks -mock_names=PendingTx=MockPendingTx
type PendingTx interface {
	// Hash returns the transaction hash of the submission
	Hash() common.Hash

	// Wait blocks until the transaction is included, the context ends, or
	// the handle is invalidated. It returns nil on successful execution,
	// domain.ErrTransactionReverted when the transaction was included but
	// failed, and domain.ErrHandleInvalidated after a chain identity change.
	Wait(ctx context.Context) error

	// State reports whether the handle is still active
	State() HandleState
}

type pendingTx struct {
	hash        common.Hash
	backend     adapter.EthBackend
	pollMax     time.Duration
	invalidated atomic.Bool
}

func newPendingTx(hash common.Hash, backend adapter.EthBackend, pollMax time.Duration) *pendingTx {
	if pollMax <= 0 {
		pollMax = 15 * time.Second
	}
	return &pendingTx{hash: hash, backend: backend, pollMax: pollMax}
}

func (p *pendingTx) Hash() common.Hash {
	return p.hash
}

func (p *pendingTx) State() HandleState {
	if p.invalidated.Load() {
		return HandleInvalidated
	}
	return HandleActive
}

// invalidate marks the handle cancelled. Any in-flight or future Wait
// resolves with domain.ErrHandleInvalidated.
func (p *pendingTx) invalidate() {
	p.invalidated.Store(true)
}

func (p *pendingTx) Wait(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = p.pollMax
	bo.MaxElapsedTime = 0 // poll until the context ends

	operation := func() error {
		if p.invalidated.Load() {
			return backoff.Permanent(domain.ErrHandleInvalidated)
		}

		receipt, err := p.backend.TransactionReceipt(ctx, p.hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return fmt.Errorf("transaction %s not yet included", p.hash.Hex())
			}
			return err
		}

		if receipt.Status == types.ReceiptStatusFailed {
			return backoff.Permanent(fmt.Errorf("%w: tx %s", domain.ErrTransactionReverted, p.hash.Hex()))
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}
