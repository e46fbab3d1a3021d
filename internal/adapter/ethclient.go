package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthBackend defines the subset of Ethereum client operations the ledger
// gateway needs, kept as an interface to enable mocking
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthBackend=MockEthBackend,EthBackendDialer=MockEthBackendDialer
type EthBackend interface {
	// CallContract executes a read-only contract call
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// PendingNonceAt returns the next nonce for an account including pending transactions
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	// SuggestGasPrice returns the currently suggested gas price
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// EstimateGas estimates the gas needed to execute a call
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// SendTransaction submits a signed transaction to the network
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// TransactionReceipt returns the receipt of a mined transaction, or
	// ethereum.NotFound while it is still pending
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// ChainID returns the chain id of the connected network
	ChainID(ctx context.Context) (*big.Int, error)

	// Close closes the connection
	Close()
}

// EthBackendDialer defines an interface for dialing Ethereum backends
type EthBackendDialer interface {
	Dial(ctx context.Context, rawurl string) (EthBackend, error)
}

// RealEthBackendDialer implements EthBackendDialer using the standard ethclient package
type RealEthBackendDialer struct{}

// NewEthBackendDialer creates a new real Ethereum backend dialer
func NewEthBackendDialer() EthBackendDialer {
	return &RealEthBackendDialer{}
}

func (d *RealEthBackendDialer) Dial(ctx context.Context, rawurl string) (EthBackend, error) {
	return ethclient.DialContext(ctx, rawurl)
}
