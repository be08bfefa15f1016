package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type SaleItem struct {
	ProductKey string  `json:"product_key"`
	Name       string  `json:"name"`
	UnitLabel  string  `json:"unit_label"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (i SaleItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// SaleRecord is immutable once appended; the ledger exposes no update or
// delete path.
type SaleRecord struct {
	OrderID      string     `json:"order_id"`
	Username     string     `json:"username"`
	OrderDateUTC time.Time  `json:"order_date_utc"`
	TotalAmount  float64    `json:"total_amount"`
	Items        []SaleItem `json:"items"`
}

// ProductSales: aggregated quantity/revenue per product for the analytics
// page.
type ProductSales struct {
	ProductKey string  `json:"product_key"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

type SalesAnalytics struct {
	TodayTotal  float64        `json:"today_total"`
	WeekTotal   float64        `json:"week_total"`
	MonthTotal  float64        `json:"month_total"`
	TopProducts []ProductSales `json:"top_products"`
}

// SalesLedger is the append-only log of completed sales (sales.json, whole
// file rewritten on every append). All aggregation is filter+sum over the
// loaded list; the history stays small enough that no index is kept.
type SalesLedger struct {
	mu   sync.Mutex
	path string

	// stubbed in tests
	now func() time.Time
}

func NewSalesLedger(dataDir string) *SalesLedger {
	return &SalesLedger{
		path: filepath.Join(dataDir, "sales.json"),
		now:  time.Now,
	}
}

func (l *SalesLedger) EnsureInitialized() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return os.WriteFile(l.path, []byte("[]"), 0o644)
	}
	return nil
}

// Record appends one sale. The order id is derived from the UTC timestamp
// ("INV-20250131094215"); when two sales land in the same second the later one
// gets a "-2", "-3", ... suffix, decided under the ledger lock.
func (l *SalesLedger) Record(username string, items []SaleItem) (SaleRecord, error) {
	if len(items) == 0 {
		return SaleRecord{}, ErrInvalidRequest
	}
	for _, it := range items {
		if it.ProductKey == "" || it.Quantity <= 0 {
			return SaleRecord{}, ErrInvalidRequest
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sales, err := l.read()
	if err != nil {
		return SaleRecord{}, err
	}

	now := l.now().UTC()

	total := 0.0
	for _, it := range items {
		total += it.LineTotal()
	}

	rec := SaleRecord{
		OrderID:      uniqueOrderID(sales, now),
		Username:     username,
		OrderDateUTC: now,
		TotalAmount:  total,
		Items:        items,
	}

	sales = append(sales, rec)
	if err := l.write(sales); err != nil {
		return SaleRecord{}, err
	}
	return rec, nil
}

// All returns the full sale history, oldest first.
func (l *SalesLedger) All() ([]SaleRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Find returns a sale by order id.
func (l *SalesLedger) Find(orderID string) (SaleRecord, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sales, err := l.read()
	if err != nil {
		return SaleRecord{}, false, err
	}
	for _, s := range sales {
		if s.OrderID == orderID {
			return s, true, nil
		}
	}
	return SaleRecord{}, false, nil
}

func (l *SalesLedger) TotalIncome() (float64, error) {
	sales, err := l.All()
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range sales {
		total += s.TotalAmount
	}
	return total, nil
}

// Recent returns the newest n sales, newest first.
func (l *SalesLedger) Recent(n int) ([]SaleRecord, error) {
	sales, err := l.All()
	if err != nil {
		return nil, err
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].OrderDateUTC.After(sales[j].OrderDateUTC)
	})
	if n > 0 && len(sales) > n {
		sales = sales[:n]
	}
	return sales, nil
}

// ForMonth returns every sale of the given calendar month (UTC).
func (l *SalesLedger) ForMonth(year int, month time.Month) ([]SaleRecord, error) {
	sales, err := l.All()
	if err != nil {
		return nil, err
	}

	out := make([]SaleRecord, 0)
	for _, s := range sales {
		if s.OrderDateUTC.Year() == year && s.OrderDateUTC.Month() == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (l *SalesLedger) MonthIncome(year int, month time.Month) (float64, error) {
	sales, err := l.ForMonth(year, month)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range sales {
		total += s.TotalAmount
	}
	return total, nil
}

// Analytics computes the today / last-7-days / calendar-month totals and the
// top 5 products by quantity sold.
func (l *SalesLedger) Analytics() (SalesAnalytics, error) {
	sales, err := l.All()
	if err != nil {
		return SalesAnalytics{}, err
	}

	now := l.now().UTC()
	today := now.Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -6)

	var a SalesAnalytics
	byKey := map[string]*ProductSales{}

	for _, s := range sales {
		day := s.OrderDateUTC.Truncate(24 * time.Hour)

		if day.Equal(today) {
			a.TodayTotal += s.TotalAmount
		}
		if !day.Before(weekStart) && !day.After(today) {
			a.WeekTotal += s.TotalAmount
		}
		if s.OrderDateUTC.Year() == now.Year() && s.OrderDateUTC.Month() == now.Month() {
			a.MonthTotal += s.TotalAmount
		}

		for _, it := range s.Items {
			ps, ok := byKey[it.ProductKey]
			if !ok {
				ps = &ProductSales{ProductKey: it.ProductKey, Name: it.Name}
				byKey[it.ProductKey] = ps
			}
			ps.Quantity += it.Quantity
			ps.Total += it.LineTotal()
		}
	}

	top := make([]ProductSales, 0, len(byKey))
	for _, ps := range byKey {
		top = append(top, *ps)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].ProductKey < top[j].ProductKey
	})
	if len(top) > 5 {
		top = top[:5]
	}
	a.TopProducts = top

	return a, nil
}

func uniqueOrderID(sales []SaleRecord, now time.Time) string {
	base := "INV-" + now.Format("20060102150405")

	taken := make(map[string]bool, len(sales))
	for _, s := range sales {
		taken[s.OrderID] = true
	}

	id := base
	for n := 2; taken[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (l *SalesLedger) read() ([]SaleRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []SaleRecord{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []SaleRecord{}, nil
	}

	var sales []SaleRecord
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (l *SalesLedger) write(sales []SaleRecord) error {
	data, err := json.MarshalIndent(sales, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
