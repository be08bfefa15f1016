package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSales(t *testing.T, now time.Time) *SalesLedger {
	t.Helper()
	l := NewSalesLedger(t.TempDir())
	l.now = func() time.Time { return now }
	require.NoError(t, l.EnsureInitialized())
	return l
}

func testItems() []SaleItem {
	return []SaleItem{
		{ProductKey: "milk_raw_milk", Name: "Raw Milk", UnitLabel: "KG", Price: 360, Quantity: 4},
		{ProductKey: "cheese_paneer", Name: "Paneer", UnitLabel: "KG", Price: 360, Quantity: 2},
	}
}

func TestRecordComputesTotal(t *testing.T) {
	now := time.Date(2026, 1, 31, 9, 42, 15, 0, time.UTC)
	l := newTestSales(t, now)

	rec, err := l.Record("farida", testItems())
	require.NoError(t, err)

	assert.Equal(t, "INV-20260131094215", rec.OrderID)
	assert.Equal(t, "farida", rec.Username)
	assert.Equal(t, now, rec.OrderDateUTC)
	assert.Equal(t, 4*360.0+2*360.0, rec.TotalAmount)

	// appended, not replaced
	all, err := l.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, rec.OrderID, all[0].OrderID)
}

func TestRecordRejectsBadItems(t *testing.T) {
	l := newTestSales(t, time.Now())

	_, err := l.Record("farida", nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = l.Record("farida", []SaleItem{{ProductKey: "", Quantity: 1}})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = l.Record("farida", []SaleItem{{ProductKey: "milk_raw_milk", Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestOrderIDsUniqueWithinSameSecond(t *testing.T) {
	now := time.Date(2026, 1, 31, 9, 42, 15, 0, time.UTC)
	l := newTestSales(t, now)

	a, err := l.Record("farida", testItems())
	require.NoError(t, err)
	b, err := l.Record("farida", testItems())
	require.NoError(t, err)
	c, err := l.Record("farida", testItems())
	require.NoError(t, err)

	assert.Equal(t, "INV-20260131094215", a.OrderID)
	assert.Equal(t, "INV-20260131094215-2", b.OrderID)
	assert.Equal(t, "INV-20260131094215-3", c.OrderID)
}

func TestFind(t *testing.T) {
	l := newTestSales(t, time.Date(2026, 1, 31, 9, 42, 15, 0, time.UTC))

	rec, err := l.Record("farida", testItems())
	require.NoError(t, err)

	got, ok, err := l.Find(rec.OrderID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec.TotalAmount, got.TotalAmount)

	_, ok, err = l.Find("INV-19990101000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnalyticsRollups(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	l := newTestSales(t, now)

	record := func(at time.Time, items []SaleItem) {
		l.now = func() time.Time { return at }
		_, err := l.Record("farida", items)
		require.NoError(t, err)
	}

	// today
	record(now, []SaleItem{{ProductKey: "milk_raw_milk", Name: "Raw Milk", Price: 360, Quantity: 2}})
	// three days ago (in week and month)
	record(now.AddDate(0, 0, -3), []SaleItem{{ProductKey: "cheese_paneer", Name: "Paneer", Price: 360, Quantity: 5}})
	// twenty days ago (in month only)
	record(now.AddDate(0, 0, -20), []SaleItem{{ProductKey: "milk_raw_milk", Name: "Raw Milk", Price: 360, Quantity: 1}})
	// last year (history only)
	record(now.AddDate(-1, 0, 0), []SaleItem{{ProductKey: "yogurt_greek", Name: "Greek Yogurt", Price: 419, Quantity: 9}})

	l.now = func() time.Time { return now }
	a, err := l.Analytics()
	require.NoError(t, err)

	assert.Equal(t, 720.0, a.TodayTotal)
	assert.Equal(t, 720.0+1800.0, a.WeekTotal)
	assert.Equal(t, 720.0+1800.0+360.0, a.MonthTotal)

	require.NotEmpty(t, a.TopProducts)
	assert.Equal(t, "yogurt_greek", a.TopProducts[0].ProductKey)
	assert.Equal(t, 9, a.TopProducts[0].Quantity)
}

func TestMonthIncome(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	l := newTestSales(t, now)

	_, err := l.Record("farida", []SaleItem{{ProductKey: "milk_raw_milk", Name: "Raw Milk", Price: 360, Quantity: 1}})
	require.NoError(t, err)

	l.now = func() time.Time { return now.AddDate(0, -1, 0) }
	_, err = l.Record("farida", []SaleItem{{ProductKey: "milk_raw_milk", Name: "Raw Milk", Price: 360, Quantity: 2}})
	require.NoError(t, err)

	jan, err := l.MonthIncome(2026, time.January)
	require.NoError(t, err)
	assert.Equal(t, 360.0, jan)

	dec, err := l.MonthIncome(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, 720.0, dec)

	total, err := l.TotalIncome()
	require.NoError(t, err)
	assert.Equal(t, 1080.0, total)
}

func TestRecentNewestFirst(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	l := newTestSales(t, now)

	for i := 0; i < 3; i++ {
		at := now.AddDate(0, 0, -i)
		l.now = func() time.Time { return at }
		_, err := l.Record("farida", []SaleItem{{ProductKey: "milk_raw_milk", Name: "Raw Milk", Price: 360, Quantity: 1}})
		require.NoError(t, err)
	}

	recent, err := l.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].OrderDateUTC.After(recent[1].OrderDateUTC))
}
