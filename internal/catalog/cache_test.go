package catalog_test

import (
	"context"
	"errors"
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
	"github.com/evento-live/evento-gateway/internal/logger"
	"github.com/evento-live/evento-gateway/internal/mocks"
)

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

// testCacheMocks contains all the mocks needed for testing the cache
type testCacheMocks struct {
	ctrl  *gomock.Controller
	gw    *mocks.MockGateway
	clock *mocks.MockClock
	cache *catalog.Cache
}

// setupTestCache creates the mocks and cache for testing
func setupTestCache(t *testing.T) *testCacheMocks {
	ctrl := gomock.NewController(t)

	tm := &testCacheMocks{
		ctrl:  ctrl,
		gw:    mocks.NewMockGateway(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()
	tm.cache = catalog.NewCache(tm.gw, tm.clock)

	return tm
}

// tearDownTestCache cleans up the test mocks
func tearDownTestCache(tm *testCacheMocks) {
	tm.ctrl.Finish()
}

func baseTickets() []domain.TicketType {
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
		{
			ID:             1,
			Name:           "VIP",
			MaxSupply:      20,
			CurrentSupply:  5,
			Price:          big.NewInt(1000),
			EarlyBirdPrice: big.NewInt(800),
			WhitelistPrice: big.NewInt(900),
			Active:         true,
		},
	}
}

func TestCache_Refresh(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	snap, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, snap.Version)
	assert.Len(t, snap.Tickets, 2)
	assert.False(t, snap.Dirty)

	held, ok := tm.cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, snap.Version, held.Version)
}

func TestCache_Refresh_FetchFails(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := tm.cache.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogFetchFailed)

	_, ok := tm.cache.Snapshot()
	assert.False(t, ok)
}

func TestCache_Snapshot_Empty(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	_, ok := tm.cache.Snapshot()
	assert.False(t, ok)
}

func TestCache_SnapshotIsIsolated(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	snap, ok := tm.cache.Snapshot()
	require.True(t, ok)
	snap.Tickets[0].Price.SetInt64(999999)

	fresh, ok := tm.cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, int64(300), fresh.Tickets[0].Price.Int64())
}

func TestCache_ApplyLocalEdit(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	newName := "General Admission Plus"
	newPrice := big.NewInt(350)
	err = tm.cache.ApplyLocalEdit(0, catalog.TicketPatch{Name: &newName, Price: newPrice})
	require.NoError(t, err)

	snap, ok := tm.cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, newName, snap.Tickets[0].Name)
	assert.Equal(t, int64(350), snap.Tickets[0].Price.Int64())
	assert.True(t, snap.Dirty)

	// Untouched fields survive the patch
	assert.Equal(t, uint64(100), snap.Tickets[0].MaxSupply)
	assert.Equal(t, int64(100), snap.Tickets[0].EarlyBirdPrice.Int64())
}

func TestCache_ApplyLocalEdit_UnknownTicket(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	err = tm.cache.ApplyLocalEdit(99, catalog.TicketPatch{})
	assert.ErrorIs(t, err, domain.ErrUnknownTicket)
}

func TestCache_RefreshDiscardsLocalEdits(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil).Times(2)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	newName := "Edited"
	require.NoError(t, tm.cache.ApplyLocalEdit(0, catalog.TicketPatch{Name: &newName}))

	// A refresh is a full overwrite, not a merge
	snap, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "General Admission", snap.Tickets[0].Name)
	assert.False(t, snap.Dirty)
}

func TestCache_AddLocalNew(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	id, err := tm.cache.AddLocalNew(domain.TicketType{
		Name:           "Student",
		MaxSupply:      50,
		CurrentSupply:  42, // must be forced to zero
		Price:          big.NewInt(150),
		EarlyBirdPrice: big.NewInt(120),
		WhitelistPrice: big.NewInt(130),
		Active:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	snap, ok := tm.cache.Snapshot()
	require.True(t, ok)
	require.Len(t, snap.Tickets, 3)
	assert.Equal(t, uint64(0), snap.Tickets[2].CurrentSupply)
	assert.True(t, snap.Dirty)
}

func TestCache_AddLocalNew_Invalid(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	_, err = tm.cache.AddLocalNew(domain.TicketType{Name: ""})
	assert.Error(t, err)
}

func TestCache_Commit_Applied(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	newPrice := big.NewInt(350)
	require.NoError(t, tm.cache.ApplyLocalEdit(0, catalog.TicketPatch{Price: newPrice}))

	edited := baseTickets()
	edited[0].Price = big.NewInt(350)

	txHash := common.HexToHash("0xabc123")
	pending := mocks.NewMockPendingTx(tm.ctrl)
	pending.EXPECT().Wait(gomock.Any()).Return(nil)
	pending.EXPECT().Hash().Return(txHash).AnyTimes()

	tm.gw.EXPECT().
		WriteAllTicketTypes(gomock.Any(), gomock.Any()).
		Return(pending, nil)
	// Post-commit fetch returns exactly what was written
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(edited, nil)

	result, err := tm.cache.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, catalog.CommitApplied, result.Outcome)
	assert.Equal(t, txHash, result.TxHash)
	assert.Equal(t, int64(350), result.Snapshot.Tickets[0].Price.Int64())
	assert.False(t, result.Snapshot.Dirty)
}

func TestCache_Commit_ConcurrentWriter(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	// Another session's write landed around ours: post-commit state differs
	divergent := baseTickets()
	divergent[1].CurrentSupply = 19

	pending := mocks.NewMockPendingTx(tm.ctrl)
	pending.EXPECT().Wait(gomock.Any()).Return(nil)
	pending.EXPECT().Hash().Return(common.HexToHash("0xdef456")).AnyTimes()

	tm.gw.EXPECT().
		WriteAllTicketTypes(gomock.Any(), gomock.Any()).
		Return(pending, nil)
	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(divergent, nil)

	result, err := tm.cache.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, catalog.CommitConcurrentWriter, result.Outcome)
}

func TestCache_Commit_WaitFails(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	pending := mocks.NewMockPendingTx(tm.ctrl)
	pending.EXPECT().Wait(gomock.Any()).Return(domain.ErrTransactionReverted)

	tm.gw.EXPECT().
		WriteAllTicketTypes(gomock.Any(), gomock.Any()).
		Return(pending, nil)

	_, err = tm.cache.Commit(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
}

func TestCache_Commit_InvalidRow(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	// Shrink max supply below the minted supply
	badSupply := uint64(1)
	require.NoError(t, tm.cache.ApplyLocalEdit(0, catalog.TicketPatch{MaxSupply: &badSupply}))

	_, err = tm.cache.Commit(context.Background())
	assert.Error(t, err)
}

func TestCache_Commit_NothingHeld(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	_, err := tm.cache.Commit(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogFetchFailed)
}

func TestCache_Invalidate(t *testing.T) {
	tm := setupTestCache(t)
	defer tearDownTestCache(tm)

	tm.gw.EXPECT().GetTicketTypes(gomock.Any()).Return(baseTickets(), nil)

	_, err := tm.cache.Refresh(context.Background())
	require.NoError(t, err)

	tm.cache.Invalidate()

	_, ok := tm.cache.Snapshot()
	assert.False(t, ok)
}
