// Package regime holds the versioned per-fiscal-year tax configuration:
// personal relief and marginal brackets, plus the currency and commodity
// index series used to value indexed assets. Tables are immutable once
// built and are passed by reference into the computation functions, so
// tests can substitute their own without touching shared state.
package regime

import (
	"sort"
	"strconv"
	"strings"
)

// Bracket is one marginal slab. UpperLimit is the exclusive upper bound of
// income taxed at Rate; an UpperLimit of zero marks the unbounded top slab.
type Bracket struct {
	UpperLimit float64
	Rate       float64
}

// Regime is one fiscal year's tax configuration. Brackets are ordered by
// strictly increasing UpperLimit with the final slab unbounded.
type Regime struct {
	PersonalRelief float64
	Brackets       []Bracket
}

// Table bundles the regime map and index series. Lookups never fail: a year
// outside the defined range clamps to the nearest boundary, a year in a gap
// resolves to the nearest earlier defined year.
type Table struct {
	regimes   map[string]Regime
	fx        map[string]map[string]float64
	commodity map[string]map[string]float64
}

// NewTable builds a Table from explicit maps. The maps are not copied;
// callers hand over ownership.
func NewTable(regimes map[string]Regime, fx, commodity map[string]map[string]float64) *Table {
	return &Table{regimes: regimes, fx: fx, commodity: commodity}
}

// RegimeFor resolves the regime for a fiscal-year label with clamp-to-boundary
// fallback, keeping tax computation total over any year.
func (t *Table) RegimeFor(label string) Regime {
	key := clampKey(regimeYears(t.regimes), label)
	return t.regimes[key]
}

// FXRate returns the currency→LKR rate for a fiscal year. LKR, an empty
// code, and currencies with no defined series all resolve to the unit rate.
func (t *Table) FXRate(currency, label string) float64 {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == "LKR" {
		return 1
	}
	series, ok := t.fx[code]
	if !ok {
		return 1
	}
	return seriesValue(series, label)
}

// CommodityIndex returns the price index for an item type and fiscal year.
// Unknown item types fall back to the designated "other" series.
func (t *Table) CommodityIndex(itemType, label string) float64 {
	key := strings.ToLower(strings.TrimSpace(itemType))
	series, ok := t.commodity[key]
	if !ok {
		series, ok = t.commodity[defaultCommoditySeries]
		if !ok {
			return 1
		}
	}
	return seriesValue(series, label)
}

func seriesValue(series map[string]float64, label string) float64 {
	years := make([]string, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	return series[clampKey(years, label)]
}

func regimeYears(regimes map[string]Regime) []string {
	years := make([]string, 0, len(regimes))
	for y := range regimes {
		years = append(years, y)
	}
	return years
}

// clampKey picks the defined year to use for label: exact match, else the
// nearest earlier year, clamped to the series boundaries. An empty series
// resolves to the empty key, which reads as the zero value everywhere.
func clampKey(years []string, label string) string {
	if len(years) == 0 {
		return ""
	}
	sort.Slice(years, func(i, j int) bool { return yearNum(years[i]) < yearNum(years[j]) })
	n := yearNum(label)
	pick := years[0]
	for _, y := range years {
		if yearNum(y) <= n {
			pick = y
		}
	}
	return pick
}

func yearNum(label string) int {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0
	}
	return n
}
