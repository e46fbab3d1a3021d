package purchase_test

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evento-live/evento-gateway/internal/catalog"
	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/gateway"
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/mocks"
	"github.com/evento-live/evento-gateway/internal/pricing"
	"github.com/evento-live/evento-gateway/internal/purchase"
	"github.com/evento-live/evento-gateway/internal/wallet"
)

const testAccount = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

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

// testOrchestratorMocks contains all the mocks needed for testing the
// orchestrator
type testOrchestratorMocks struct {
	ctrl         *gomock.Controller
	provider     *mocks.MockProvider
	events       chan wallet.Event
	session      *wallet.Session
	gw           *mocks.MockGateway
	clock        *mocks.MockClock
	cache        *catalog.Cache
	registry     *pricing.Registry
	orchestrator *purchase.Orchestrator
}

// setupTestOrchestrator creates the mocks and orchestrator for testing
func setupTestOrchestrator(t *testing.T) *testOrchestratorMocks {
	ctrl := gomock.NewController(t)

	tm := &testOrchestratorMocks{
		ctrl:     ctrl,
		provider: mocks.NewMockProvider(ctrl),
		events:   make(chan wallet.Event),
		gw:       mocks.NewMockGateway(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	tm.provider.EXPECT().Events().Return((<-chan wallet.Event)(tm.events)).AnyTimes()
	tm.clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()

	tm.session = wallet.NewSession(tm.provider)
	tm.cache = catalog.NewCache(tm.gw, tm.clock)

	registry, err := pricing.NewRegistry(domain.DiscountCode{Code: "SAVE25", Percentage: 25})
	require.NoError(t, err)
	tm.registry = registry

	tm.orchestrator = purchase.NewOrchestrator(tm.session, tm.gw, tm.cache, tm.registry)
	return tm
}

// tearDownTestOrchestrator cleans up the test mocks
func tearDownTestOrchestrator(tm *testOrchestratorMocks) {
	tm.session.Close()
	tm.ctrl.Finish()
}

// connect establishes the wallet session
func (tm *testOrchestratorMocks) connect(t *testing.T) {
	tm.provider.EXPECT().
		RequestAccounts(gomock.Any()).
		Return([]string{testAccount}, nil)
	_, err := tm.session.Connect(context.Background())
	require.NoError(t, err)
}

// primeCatalog fills the cache with the given tickets
func (tm *testOrchestratorMocks) primeCatalog(t *testing.T, tickets []domain.TicketType) {
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(tickets, nil)
	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)
}

func catalogTickets() []domain.TicketType {
	return []domain.TicketType{
		{
			ID:             0,
			Name:           "General Admission",
			MaxSupply:      100,
			CurrentSupply:  10,
			Price:          big.NewInt(300),
			EarlyBirdPrice: big.NewInt(100),
			WhitelistPrice: big.NewInt(200),
			Active:         true,
		},
	}
}

func openFlags() domain.SalePhaseFlags {
	return domain.SalePhaseFlags{SaleActive: true}
}

// expectConfirmedPurchase wires a purchase submission that confirms, asserting
// the attached value
func (tm *testOrchestratorMocks) expectConfirmedPurchase(t *testing.T, wantValue int64) *mocks.MockPendingTx {
	pending := mocks.NewMockPendingTx(tm.ctrl)
	pending.EXPECT().Hash().Return(common.HexToHash("0xfeed")).AnyTimes()
	pending.EXPECT().Wait(gomock.Any()).Return(nil)

	tm.gw.EXPECT().
		PurchaseTickets(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int, qty uint64, code string, value *big.Int) (gateway.PendingTx, error) {
			assert.Equal(t, wantValue, value.Int64())
			return pending, nil
		})
	return pending
}

func TestPurchase_ZeroQuantity(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	// No gateway expectations: validation fails before any network access
	_, err := tm.orchestrator.Purchase(context.Background(), 0, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPurchase_NotConnected(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	_, err := tm.orchestrator.Purchase(context.Background(), 0, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestPurchase_UnknownTicket(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	_, err := tm.orchestrator.Purchase(context.Background(), 99, 1, "")
	assert.ErrorIs(t, err, domain.ErrUnknownTicket)
}

func TestPurchase_HappyPath(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)
	tm.expectConfirmedPurchase(t, 600) // 300 x 2

	// Post-purchase catalog refresh
	refreshed := catalogTickets()
	refreshed[0].CurrentSupply = 12
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(refreshed, nil)

	receipt, err := tm.orchestrator.Purchase(context.Background(), 0, 2, "")
	require.NoError(t, err)

	assert.Equal(t, domain.TierRegular, receipt.Tier)
	assert.Equal(t, int64(300), receipt.UnitPrice.Int64())
	assert.Equal(t, int64(600), receipt.TotalValue.Int64())
	assert.Equal(t, uint64(2), receipt.Quantity)
	assert.False(t, receipt.SupplyWarning)

	snap, ok := tm.cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, uint64(12), snap.Tickets[0].CurrentSupply)
}

func TestPurchase_WhitelistTierWithDiscount(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	flags := openFlags()
	flags.WhitelistActive = true
	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(flags, nil)
	tm.gw.EXPECT().IsWhitelisted(gomock.Any(), testAccount).Return(true, nil)

	// Whitelist price 200, 25% off = 150 per unit
	tm.expectConfirmedPurchase(t, 150)
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(catalogTickets(), nil)

	receipt, err := tm.orchestrator.Purchase(context.Background(), 0, 1, "SAVE25")
	require.NoError(t, err)

	assert.Equal(t, domain.TierWhitelist, receipt.Tier)
	assert.Equal(t, int64(150), receipt.UnitPrice.Int64())
}

func TestPurchase_UnknownDiscountCode(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)

	_, err := tm.orchestrator.Purchase(context.Background(), 0, 1, "NOPE")
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountCode)
}

func TestPurchase_SupplyWarningStillSubmits(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)

	tickets := catalogTickets()
	tickets[0].CurrentSupply = 99 // one remaining
	tm.primeCatalog(t, tickets)

	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)
	tm.expectConfirmedPurchase(t, 1500) // 300 x 5, contract decides
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(tickets, nil)

	receipt, err := tm.orchestrator.Purchase(context.Background(), 0, 5, "")
	require.NoError(t, err)
	assert.True(t, receipt.SupplyWarning)
}

func TestPurchase_Reverted(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)

	pending := mocks.NewMockPendingTx(tm.ctrl)
	pending.EXPECT().Hash().Return(common.HexToHash("0xdead")).AnyTimes()
	pending.EXPECT().Wait(gomock.Any()).Return(domain.ErrTransactionReverted)

	tm.gw.EXPECT().
		PurchaseTickets(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pending, nil)

	_, err := tm.orchestrator.Purchase(context.Background(), 0, 1, "")
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
}

func TestPurchase_RefreshFailureDoesNotFailPurchase(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.connect(t)
	tm.primeCatalog(t, catalogTickets())

	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)
	tm.expectConfirmedPurchase(t, 300)
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(nil, assert.AnError)

	receipt, err := tm.orchestrator.Purchase(context.Background(), 0, 1, "")
	require.NoError(t, err)
	assert.NotNil(t, receipt)
}

func TestQuote_WithoutSession(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.primeCatalog(t, catalogTickets())

	// Whitelist phase open but nobody connected: regular price applies
	flags := openFlags()
	flags.WhitelistActive = true
	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(flags, nil)

	quote, err := tm.orchestrator.Quote(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, domain.TierRegular, quote.Tier)
	assert.Equal(t, int64(300), quote.UnitPrice.Int64())
}

func TestQuote_FetchesCatalogWhenEmpty(t *testing.T) {
	tm := setupTestOrchestrator(t)
	defer tearDownTestOrchestrator(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(catalogTickets(), nil)
	tm.gw.EXPECT().GetSalePhaseFlags(gomock.Any()).Return(openFlags(), nil)

	quote, err := tm.orchestrator.Quote(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(300), quote.UnitPrice.Int64())
}
