package wallet

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/logger"
)

// State is the wallet session connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// SessionEventKind discriminates session notifications delivered to
// downstream subscribers (gateway, catalog cache).
type SessionEventKind string

const (
	// SessionAccountChanged reports an account swap while staying connected
	SessionAccountChanged SessionEventKind = "account_changed"

	// SessionDisconnected reports a transition to the disconnected state
	SessionDisconnected SessionEventKind = "disconnected"

	// SessionChainChanged reports a chain identity change. Subscribers must
	// treat every previously resolved signer-bound handle and cached snapshot
	// as invalid.
	SessionChainChanged SessionEventKind = "chain_changed"
)

// SessionEvent is a session state change notification.
type SessionEvent struct {
	Kind    SessionEventKind
	Account string
}

// Session owns the connection state to the signing provider. It is the leaf
// dependency for every signer-bound operation: the gateway resolves transact
// options through it, and its subscription stream is how chain identity
// changes propagate to the rest of the system.
type Session struct {
	provider Provider

	mu      sync.Mutex
	state   State
	account string
	subs    map[int]chan SessionEvent
	nextSub int
	started bool
	done    chan struct{}
}

// NewSession creates a session manager over the given provider. A nil
// provider is allowed; Connect then fails with domain.ErrProviderMissing.
func NewSession(provider Provider) *Session {
	return &Session{
		provider: provider,
		state:    StateDisconnected,
		subs:     make(map[int]chan SessionEvent),
		done:     make(chan struct{}),
	}
}

// Connect requests account access from the provider and transitions the
// session to the connected state. It fails with domain.ErrProviderMissing
// when no provider is configured and domain.ErrUserRejected when the
// permission request is declined or yields no accounts.
func (s *Session) Connect(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", domain.ErrProviderMissing
	}

	s.mu.Lock()
	s.state = StateConnecting
	s.mu.Unlock()

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		return "", err
	}
	if len(accounts) == 0 {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		return "", domain.ErrUserRejected
	}

	account := domain.NormalizeAddress(accounts[0])

	s.mu.Lock()
	s.state = StateConnected
	s.account = account
	if !s.started {
		s.started = true
		go s.watchProvider()
	}
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Wallet session connected", zap.String("account", account))
	return account, nil
}

// Disconnect clears the session. It is safe to call in any state and is
// idempotent.
func (s *Session) Disconnect() {
	s.mu.Lock()
	wasConnected := s.state == StateConnected
	s.state = StateDisconnected
	s.account = ""
	s.mu.Unlock()

	if wasConnected {
		s.broadcast(SessionEvent{Kind: SessionDisconnected})
	}
}

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Account returns the resolved account identity, if connected.
func (s *Session) Account() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateConnected {
		return "", false
	}
	return s.account, true
}

// TransactOpts returns signing options bound to the connected account. It
// fails with domain.ErrNotConnected when no session is active.
func (s *Session) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	account, ok := s.Account()
	if !ok {
		return nil, domain.ErrNotConnected
	}
	return s.provider.TransactOpts(ctx, account)
}

// Subscribe registers a session event subscriber and returns the event
// channel plus a cancel function. Events are dropped, not blocked on, when a
// subscriber falls behind.
func (s *Session) Subscribe() (<-chan SessionEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan SessionEvent, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close stops the provider watch loop and closes all subscriptions.
func (s *Session) Close() {
	s.mu.Lock()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()
}

// watchProvider consumes provider notifications and translates them into
// session transitions.
func (s *Session) watchProvider() {
	events := s.provider.Events()
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handleProviderEvent(ev)
		}
	}
}

func (s *Session) handleProviderEvent(ev Event) {
	switch ev.Kind {
	case EventAccountsChanged:
		if len(ev.Accounts) == 0 {
			logger.Info("Provider reported empty account list, disconnecting")
			s.Disconnect()
			return
		}

		account := domain.NormalizeAddress(ev.Accounts[0])
		s.mu.Lock()
		if s.state != StateConnected || s.account == account {
			s.mu.Unlock()
			return
		}
		s.account = account
		s.mu.Unlock()

		logger.Info("Wallet account changed", zap.String("account", account))
		s.broadcast(SessionEvent{Kind: SessionAccountChanged, Account: account})

	case EventChainChanged:
		// A chain identity change invalidates every signer-bound handle and
		// cached snapshot downstream. Broadcast before clearing the session
		// so subscribers see the event while the old state is still visible.
		chain := ""
		if ev.ChainID != nil {
			chain = ev.ChainID.String()
		}
		logger.Warn("Chain identity changed, invalidating session state", zap.String("chain_id", chain))
		s.broadcast(SessionEvent{Kind: SessionChainChanged})

		s.mu.Lock()
		s.state = StateDisconnected
		s.account = ""
		s.mu.Unlock()
	}
}

func (s *Session) broadcast(ev SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full; drop rather than block the watch loop.
		}
	}
}
