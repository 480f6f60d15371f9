package regime

import (
	"reflect"
	"testing"
)

func TestRegimeForExactMatch(t *testing.T) {
	tbl := Default()
	r := tbl.RegimeFor("2024")
	if r.PersonalRelief != 1_200_000 {
		t.Errorf("2024 personal relief = %v, want 1200000", r.PersonalRelief)
	}
	if len(r.Brackets) != 6 {
		t.Fatalf("2024 brackets = %d, want 6", len(r.Brackets))
	}
	if r.Brackets[0].UpperLimit != 500_000 || r.Brackets[0].Rate != 0.06 {
		t.Errorf("first bracket = %+v, want {500000 0.06}", r.Brackets[0])
	}
	if r.Brackets[5].UpperLimit != 0 || r.Brackets[5].Rate != 0.36 {
		t.Errorf("top bracket = %+v, want unbounded at 0.36", r.Brackets[5])
	}
}

func TestRegimeForClampsToBoundaries(t *testing.T) {
	tbl := Default()
	if got, want := tbl.RegimeFor("1900"), tbl.RegimeFor("2015"); !reflect.DeepEqual(got, want) {
		t.Errorf("RegimeFor(1900) should clamp down to the 2015 regime")
	}
	if got, want := tbl.RegimeFor("2099"), tbl.RegimeFor("2025"); !reflect.DeepEqual(got, want) {
		t.Errorf("RegimeFor(2099) should clamp up to the 2025 regime")
	}
}

func TestRegimeForGapResolvesToEarlierYear(t *testing.T) {
	tbl := Default()
	// 2021 is not defined; it falls under the 2020 concessionary regime.
	if got := tbl.RegimeFor("2021"); got.PersonalRelief != 3_000_000 {
		t.Errorf("RegimeFor(2021) relief = %v, want 3000000", got.PersonalRelief)
	}
}

func TestFXRate(t *testing.T) {
	tbl := Default()
	tests := []struct {
		currency string
		label    string
		want     float64
	}{
		{"USD", "2024", 300},
		{"usd", "2024", 300}, // case-insensitive
		{"USD", "1990", 135}, // clamp down
		{"USD", "2099", 298}, // clamp up
		{"GBP", "2018", 200}, // gap resolves to 2017
		{"LKR", "2024", 1},
		{"", "2024", 1},
		{"XYZ", "2024", 1}, // unknown currency is unit rate
	}
	for _, tt := range tests {
		if got := tbl.FXRate(tt.currency, tt.label); got != tt.want {
			t.Errorf("FXRate(%q, %q) = %v, want %v", tt.currency, tt.label, got, tt.want)
		}
	}
}

func TestCommodityIndex(t *testing.T) {
	tbl := Default()
	if got := tbl.CommodityIndex("gold", "2024"); got != 2390 {
		t.Errorf("gold 2024 = %v, want 2390", got)
	}
	// Unknown item types use the "other" series.
	if got, want := tbl.CommodityIndex("platinum", "2023"), tbl.CommodityIndex("other", "2023"); got != want {
		t.Errorf("unknown item type = %v, want other-series value %v", got, want)
	}
	if got := tbl.CommodityIndex("gems", "1900"); got != 100 {
		t.Errorf("gems clamp-down = %v, want 100", got)
	}
}

func TestEmptyTableLookups(t *testing.T) {
	tbl := NewTable(nil, nil, nil)
	if got := tbl.RegimeFor("2024"); got.PersonalRelief != 0 || got.Brackets != nil {
		t.Errorf("empty table RegimeFor = %+v, want zero regime", got)
	}
	if got := tbl.FXRate("USD", "2024"); got != 1 {
		t.Errorf("empty table FXRate = %v, want 1", got)
	}

	// A defined currency with an empty series reads as zero, not a panic.
	sparse := NewTable(nil, map[string]map[string]float64{"USD": {}}, nil)
	if got := sparse.FXRate("USD", "2024"); got != 0 {
		t.Errorf("empty-series FXRate = %v, want 0", got)
	}
}

func TestNewTableSubstitution(t *testing.T) {
	// Computation code takes a *Table, so a test can swap in a one-regime
	// table without touching Default().
	tbl := NewTable(map[string]Regime{
		"2024": {PersonalRelief: 100, Brackets: []Bracket{{Rate: 0.1}}},
	}, nil, nil)
	if got := tbl.RegimeFor("2030").PersonalRelief; got != 100 {
		t.Errorf("substituted table relief = %v, want 100", got)
	}
	if got := tbl.FXRate("USD", "2024"); got != 1 {
		t.Errorf("empty fx table should give unit rate, got %v", got)
	}
	if got := tbl.CommodityIndex("gold", "2024"); got != 1 {
		t.Errorf("empty commodity table should give 1, got %v", got)
	}
}
