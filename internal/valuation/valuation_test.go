package valuation

import (
	"math"
	"testing"
	"time"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
)

func testTable() *regime.Table {
	return regime.NewTable(
		map[string]regime.Regime{"2024": {}},
		map[string]map[string]float64{
			"USD": {"2020": 190, "2024": 300},
		},
		map[string]map[string]float64{
			"gold":  {"2020": 1855, "2024": 2390},
			"other": {"2020": 100, "2024": 142},
		},
	)
}

func TestAppreciatedValue(t *testing.T) {
	tbl := testTable()
	got := AppreciatedValue(tbl, 1_000_000, "gold", "2020", "2024")
	want := 1_000_000 * (2390.0 / 1855.0) * (300.0 / 190.0)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("AppreciatedValue = %v, want %v", got, want)
	}

	// Same-year indexing is the identity.
	if got := AppreciatedValue(tbl, 500_000, "gold", "2024", "2024"); math.Abs(got-500_000) > 0.01 {
		t.Errorf("same-year AppreciatedValue = %v, want 500000", got)
	}

	// A zero acquisition-year index must not divide; the cost passes through.
	zeroTbl := regime.NewTable(nil, nil, map[string]map[string]float64{
		"other": {"2020": 0, "2024": 142},
	})
	if got := AppreciatedValue(zeroTbl, 750_000, "gems", "2020", "2024"); got != 750_000 {
		t.Errorf("zero-index AppreciatedValue = %v, want 750000", got)
	}
}

func TestForeignCurrencyValue(t *testing.T) {
	tbl := testTable()

	lkr := &model.Asset{Category: model.AssetFinancial, Currency: "LKR", MarketValue: 2_500_000}
	if got := ForeignCurrencyValue(tbl, lkr, "2024"); got != 2_500_000 {
		t.Errorf("LKR asset = %v, want stored market value", got)
	}

	// Balance record for the target year wins over the stored market value.
	usd := &model.Asset{
		Category:    model.AssetFinancial,
		Currency:    "USD",
		MarketValue: 10_000,
		Balances: []model.Balance{
			{TaxYear: "2024", ClosingBalance: 12_000},
		},
	}
	if got := ForeignCurrencyValue(tbl, usd, "2024"); got != 12_000*300 {
		t.Errorf("USD balance conversion = %v, want %v", got, 12_000*300)
	}

	// No balance record for the year: fall back to stored market value. The
	// gap year 2023 resolves to the nearest earlier rate in the series (190).
	if got := ForeignCurrencyValue(tbl, usd, "2023"); got != 10_000*190 {
		t.Errorf("USD fallback conversion = %v, want %v", got, 10_000*190)
	}
	if got := ForeignCurrencyValue(tbl, usd, "2025"); got != 10_000*300 {
		t.Errorf("USD fallback conversion = %v, want %v", got, 10_000*300)
	}
}

func TestCurrentValue(t *testing.T) {
	tbl := testTable()

	jewellery := &model.Asset{
		Category:     model.AssetJewellery,
		ItemType:     "gold",
		AcquiredDate: date(2020, time.June, 1),
		Cost:         1_000_000,
	}
	want := 1_000_000 * (2390.0 / 1855.0) * (300.0 / 190.0)
	if got := CurrentValue(tbl, jewellery, "2024"); math.Abs(got-want) > 0.01 {
		t.Errorf("jewellery CurrentValue = %v, want %v", got, want)
	}

	financial := &model.Asset{Category: model.AssetFinancial, Currency: "USD", MarketValue: 5_000}
	if got := CurrentValue(tbl, financial, "2024"); got != 5_000*300 {
		t.Errorf("financial CurrentValue = %v, want %v", got, 5_000*300)
	}

	property := &model.Asset{Category: model.AssetProperty, MarketValue: 12_000_000}
	if got := CurrentValue(tbl, property, "2024"); got != 12_000_000 {
		t.Errorf("property CurrentValue = %v, want stored market value", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInScope(t *testing.T) {
	disposedAt := func(t time.Time) *model.Disposal { return &model.Disposal{Date: &t} }

	tests := []struct {
		name  string
		asset *model.Asset
		want  bool
	}{
		{
			"acquired inside window",
			&model.Asset{AcquiredDate: date(2024, time.June, 1)},
			true,
		},
		{
			"acquired after window end",
			&model.Asset{AcquiredDate: date(2025, time.April, 1)},
			false,
		},
		{
			"acquired years before",
			&model.Asset{AcquiredDate: date(2018, time.January, 10)},
			true,
		},
		{
			"disposed before window start",
			&model.Asset{AcquiredDate: date(2020, time.May, 1), Disposal: disposedAt(date(2024, time.March, 31))},
			false,
		},
		{
			"disposed during window",
			&model.Asset{AcquiredDate: date(2020, time.May, 1), Disposal: disposedAt(date(2024, time.June, 1))},
			true,
		},
		{
			"disposal with no date always excludes",
			&model.Asset{AcquiredDate: date(2020, time.May, 1), Disposal: &model.Disposal{}},
			false,
		},
		{
			"closed before window start",
			&model.Asset{AcquiredDate: date(2020, time.May, 1), Closure: &model.Closure{Date: timePtr(date(2023, time.December, 1))}},
			false,
		},
		{
			"closure with no date always excludes",
			&model.Asset{AcquiredDate: date(2020, time.May, 1), Closure: &model.Closure{}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InScope(tt.asset, "2024"); got != tt.want {
				t.Errorf("InScope = %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestFilterInScope(t *testing.T) {
	in := &model.Asset{ID: "a", AcquiredDate: date(2023, time.May, 1)}
	out := &model.Asset{ID: "b", AcquiredDate: date(2025, time.June, 1)}
	got := FilterInScope([]*model.Asset{in, out}, "2024")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("FilterInScope kept %d assets, want only %q", len(got), "a")
	}
}
