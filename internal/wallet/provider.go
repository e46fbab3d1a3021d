package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// EventKind discriminates provider notifications.
type EventKind string

const (
	// EventAccountsChanged carries the provider's current account list. An
	// empty list means the user revoked access.
	EventAccountsChanged EventKind = "accounts_changed"

	// EventChainChanged signals that the provider switched chain identity.
	// Every signer-bound handle resolved before this event is stale.
	EventChainChanged EventKind = "chain_changed"
)

// Event is a notification pushed by the signing provider.
type Event struct {
	Kind     EventKind
	Accounts []string
	ChainID  *big.Int
}

// Provider abstracts the external wallet provider: an account permission
// request/response call, signer binding, and a subscription stream for
// account and chain identity changes
//
//go:generate mockgen -source=provider.go -destination=../mocks/provider.go -package=mocks -mock_names=Provider=MockProvider
type Provider interface {
	// RequestAccounts asks the provider for account access and returns the
	// granted accounts. It fails with domain.ErrUserRejected when permission
	// is declined.
	RequestAccounts(ctx context.Context) ([]string, error)

	// ChainID returns the chain identity the provider is bound to
	ChainID(ctx context.Context) (*big.Int, error)

	// TransactOpts returns signing options bound to the given account
	TransactOpts(ctx context.Context, account string) (*bind.TransactOpts, error)

	// Events returns the provider notification stream. The channel is closed
	// when the provider shuts down.
	Events() <-chan Event

	// Close releases provider resources
	Close()
}
