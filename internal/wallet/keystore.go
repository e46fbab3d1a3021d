package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evento-live/evento-gateway/internal/adapter"
	"github.com/evento-live/evento-gateway/internal/domain"
)

// KeystoreConfig holds configuration for the keystore-backed provider.
type KeystoreConfig struct {
	// Path is the keystore directory holding encrypted key files
	Path string
	// Passphrase unlocks the first keystore account on RequestAccounts
	Passphrase string
}

// keystoreProvider implements Provider over a local go-ethereum keystore.
// It is the headless stand-in for a browser wallet: RequestAccounts unlocks
// the key instead of prompting, and a declined unlock (wrong passphrase)
// maps to the user-rejected error.
type keystoreProvider struct {
	ks         *keystore.KeyStore
	passphrase string
	backend    adapter.EthBackend
	events     chan Event
}

// NewKeystoreProvider creates a keystore-backed signing provider.
func NewKeystoreProvider(cfg KeystoreConfig, backend adapter.EthBackend) Provider {
	return &keystoreProvider{
		ks:         keystore.NewKeyStore(cfg.Path, keystore.StandardScryptN, keystore.StandardScryptP),
		passphrase: cfg.Passphrase,
		backend:    backend,
		events:     make(chan Event),
	}
}

func (p *keystoreProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	all := p.ks.Accounts()
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: keystore holds no accounts", domain.ErrProviderMissing)
	}

	if err := p.ks.Unlock(all[0], p.passphrase); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUserRejected, err)
	}

	addrs := make([]string, 0, len(all))
	for _, acct := range all {
		addrs = append(addrs, acct.Address.Hex())
	}
	return addrs, nil
}

func (p *keystoreProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return p.backend.ChainID(ctx)
}

func (p *keystoreProvider) TransactOpts(ctx context.Context, account string) (*bind.TransactOpts, error) {
	chainID, err := p.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain id: %w", err)
	}

	acct := accounts.Account{Address: common.HexToAddress(account)}
	opts, err := bind.NewKeyStoreTransactorWithChainID(p.ks, acct, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to bind keystore signer: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (p *keystoreProvider) Events() <-chan Event {
	return p.events
}

func (p *keystoreProvider) Close() {
	close(p.events)
}
