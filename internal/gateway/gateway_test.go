package gateway_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/mocks"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

const (
	testContract = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testAccount  = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
)

// ticketTypesABI mirrors the contract's getTicketTypes output shape for
// packing mock return data.
const ticketTypesABI = `[{"constant":true,"inputs":[],"name":"getTicketTypes","outputs":[{"components":[{"name":"name","type":"string"},{"name":"maxSupply","type":"uint256"},{"name":"currentSupply","type":"uint256"},{"name":"price","type":"uint256"},{"name":"earlyBirdPrice","type":"uint256"},{"name":"whitelistPrice","type":"uint256"},{"name":"active","type":"bool"}],"name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"}]`

type packedTicket struct {
	Name           string   `abi:"name"`
	MaxSupply      *big.Int `abi:"maxSupply"`
	CurrentSupply  *big.Int `abi:"currentSupply"`
	Price          *big.Int `abi:"price"`
	EarlyBirdPrice *big.Int `abi:"earlyBirdPrice"`
	WhitelistPrice *big.Int `abi:"whitelistPrice"`
	Active         bool     `abi:"active"`
}

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testGatewayMocks contains all the mocks needed for testing the gateway
type testGatewayMocks struct {
	ctrl     *gomock.Controller
	backend  *mocks.MockEthBackend
	provider *mocks.MockProvider
	events   chan wallet.Event
	session  *wallet.Session
	gw       gateway.Gateway
}

// setupTestGateway creates the mocks and a gateway bound to a connected
// session
func setupTestGateway(t *testing.T) *testGatewayMocks {
	ctrl := gomock.NewController(t)

	tm := &testGatewayMocks{
		ctrl:     ctrl,
		backend:  mocks.NewMockEthBackend(ctrl),
		provider: mocks.NewMockProvider(ctrl),
		events:   make(chan wallet.Event),
	}
	tm.provider.EXPECT().Events().Return((<-chan wallet.Event)(tm.events)).AnyTimes()
	tm.session = wallet.NewSession(tm.provider)

	tm.provider.EXPECT().
		RequestAccounts(gomock.Any()).
		Return([]string{testAccount}, nil)
	_, err := tm.session.Connect(context.Background())
	require.NoError(t, err)

	gw, err := gateway.New(gateway.Config{
		ContractAddress:        testContract,
		ReceiptPollMaxInterval: time.Second,
	}, tm.backend, tm.session)
	require.NoError(t, err)
	tm.gw = gw

	return tm
}

// tearDownTestGateway cleans up the test mocks
func tearDownTestGateway(tm *testGatewayMocks) {
	tm.gw.Close()
	tm.session.Close()
	tm.ctrl.Finish()
}

// expectTransactOpts wires a pass-through signer for one write
func (tm *testGatewayMocks) expectTransactOpts() {
	tm.provider.EXPECT().
		TransactOpts(gomock.Any(), testAccount).
		Return(&bind.TransactOpts{
			From: common.HexToAddress(testAccount),
			Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
				return tx, nil
			},
		}, nil)
}

// expectSubmission wires the nonce, gas price, estimation and send calls for
// one successful write
func (tm *testGatewayMocks) expectSubmission() {
	tm.expectTransactOpts()
	tm.backend.EXPECT().
		PendingNonceAt(gomock.Any(), common.HexToAddress(testAccount)).
		Return(uint64(7), nil)
	tm.backend.EXPECT().
		SuggestGasPrice(gomock.Any()).
		Return(big.NewInt(1_000_000_000), nil)
	tm.backend.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(50_000), nil)
	tm.backend.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		Return(nil)
}

// packBool encodes a single bool return value
func packBool(v bool) []byte {
	out := make([]byte, 32)
	if v {
		out[31] = 1
	}
	return out
}

// packTickets encodes a getTicketTypes return value
func packTickets(t *testing.T, tickets []packedTicket) []byte {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(ticketTypesABI))
	require.NoError(t, err)

	data, err := parsed.Methods["getTicketTypes"].Outputs.Pack(tickets)
	require.NoError(t, err)
	return data
}

func TestGateway_GetSalePhaseFlags(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	// saleActive, earlyBirdActive, whitelistActive, eventCancelled
	gomock.InOrder(
		tm.backend.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(packBool(true), nil),
		tm.backend.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(packBool(false), nil),
		tm.backend.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(packBool(true), nil),
		tm.backend.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(packBool(false), nil),
	)

	flags, err := tm.gw.GetSalePhaseFlags(context.Background())
	require.NoError(t, err)

	assert.True(t, flags.SaleActive)
	assert.False(t, flags.EarlyBirdActive)
	assert.True(t, flags.WhitelistActive)
	assert.False(t, flags.EventCancelled)
}

func TestGateway_GetSalePhaseFlags_CallFails(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.backend.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("connection refused"))

	_, err := tm.gw.GetSalePhaseFlags(context.Background())
	assert.Error(t, err)
}

func TestGateway_GetTicketTypes(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	data := packTickets(t, []packedTicket{
		{
			Name:           "General Admission",
			MaxSupply:      big.NewInt(100),
			CurrentSupply:  big.NewInt(10),
			Price:          big.NewInt(300),
			EarlyBirdPrice: big.NewInt(100),
			WhitelistPrice: big.NewInt(200),
			Active:         true,
		},
		{
			Name:           "VIP",
			MaxSupply:      big.NewInt(20),
			CurrentSupply:  big.NewInt(20),
			Price:          big.NewInt(1000),
			EarlyBirdPrice: big.NewInt(800),
			WhitelistPrice: big.NewInt(900),
			Active:         false,
		},
	})

	tm.backend.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(data, nil)

	tickets, err := tm.gw.GetTicketTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	assert.Equal(t, 0, tickets[0].ID)
	assert.Equal(t, "General Admission", tickets[0].Name)
	assert.Equal(t, uint64(100), tickets[0].MaxSupply)
	assert.Equal(t, uint64(10), tickets[0].CurrentSupply)
	assert.Equal(t, int64(300), tickets[0].Price.Int64())
	assert.True(t, tickets[0].Active)

	assert.Equal(t, 1, tickets[1].ID)
	assert.Equal(t, "VIP", tickets[1].Name)
	assert.Equal(t, uint64(0), tickets[1].Remaining())
	assert.False(t, tickets[1].Active)
}

func TestGateway_GetTicketTypes_MalformedSupply(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	data := packTickets(t, []packedTicket{
		{
			Name:           "Broken",
			MaxSupply:      huge,
			CurrentSupply:  big.NewInt(0),
			Price:          big.NewInt(1),
			EarlyBirdPrice: big.NewInt(1),
			WhitelistPrice: big.NewInt(1),
			Active:         true,
		},
	})

	tm.backend.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(data, nil)

	_, err := tm.gw.GetTicketTypes(context.Background())
	assert.Error(t, err)
}

func TestGateway_IsWhitelisted(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.backend.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(packBool(true), nil)

	whitelisted, err := tm.gw.IsWhitelisted(context.Background(), testAccount)
	require.NoError(t, err)
	assert.True(t, whitelisted)
}

func TestGateway_IsWhitelisted_InvalidAddress(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	_, err := tm.gw.IsWhitelisted(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestGateway_SetSaleActive_Confirms(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectSubmission()

	pending, err := tm.gw.SetSaleActive(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, gateway.HandleActive, pending.State())
	assert.NotEqual(t, common.Hash{}, pending.Hash())

	tm.backend.EXPECT().
		TransactionReceipt(gomock.Any(), pending.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	assert.NoError(t, pending.Wait(context.Background()))
}

func TestGateway_Wait_PollsUntilIncluded(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectSubmission()

	pending, err := tm.gw.SetEarlyBirdActive(context.Background(), true)
	require.NoError(t, err)

	gomock.InOrder(
		tm.backend.EXPECT().
			TransactionReceipt(gomock.Any(), pending.Hash()).
			Return(nil, ethereum.NotFound),
		tm.backend.EXPECT().
			TransactionReceipt(gomock.Any(), pending.Hash()).
			Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
	)

	assert.NoError(t, pending.Wait(context.Background()))
}

func TestGateway_Wait_Reverted(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectSubmission()

	pending, err := tm.gw.SetWhitelistActive(context.Background(), true)
	require.NoError(t, err)

	tm.backend.EXPECT().
		TransactionReceipt(gomock.Any(), pending.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	err = pending.Wait(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
}

func TestGateway_Submit_EstimationRejected(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectTransactOpts()
	tm.backend.EXPECT().
		PendingNonceAt(gomock.Any(), common.HexToAddress(testAccount)).
		Return(uint64(1), nil)
	tm.backend.EXPECT().
		SuggestGasPrice(gomock.Any()).
		Return(big.NewInt(1), nil)
	tm.backend.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(0), errors.New("execution reverted: sale closed"))

	_, err := tm.gw.PurchaseTickets(context.Background(), 0, 1, "", big.NewInt(300))
	assert.ErrorIs(t, err, domain.ErrTransactionRejected)
}

func TestGateway_Submit_SendRejected(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectTransactOpts()
	tm.backend.EXPECT().
		PendingNonceAt(gomock.Any(), common.HexToAddress(testAccount)).
		Return(uint64(1), nil)
	tm.backend.EXPECT().
		SuggestGasPrice(gomock.Any()).
		Return(big.NewInt(1), nil)
	tm.backend.EXPECT().
		EstimateGas(gomock.Any(), gomock.Any()).
		Return(uint64(21_000), nil)
	tm.backend.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("nonce too low"))

	_, err := tm.gw.SetEventCancelled(context.Background(), true)
	assert.ErrorIs(t, err, domain.ErrTransactionRejected)
}

func TestGateway_Submit_NotConnected(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.session.Disconnect()

	_, err := tm.gw.SetSaleActive(context.Background(), true)
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestGateway_ChainChangeInvalidatesPending(t *testing.T) {
	tm := setupTestGateway(t)
	defer tearDownTestGateway(tm)

	tm.expectSubmission()

	pending, err := tm.gw.AddToWhitelist(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, gateway.HandleActive, pending.State())

	tm.events <- wallet.Event{Kind: wallet.EventChainChanged, ChainID: big.NewInt(5)}

	assert.Eventually(t, func() bool {
		return pending.State() == gateway.HandleInvalidated
	}, 2*time.Second, 10*time.Millisecond)

	err = pending.Wait(context.Background())
	assert.ErrorIs(t, err, domain.ErrHandleInvalidated)
}

func TestGateway_New_InvalidContractAddress(t *testing.T) {
	_, err := gateway.New(gateway.Config{ContractAddress: "bogus"}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}
