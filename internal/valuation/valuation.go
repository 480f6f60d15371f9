// Package valuation turns historical cost bases into current fiscal-year
// values for indexed asset categories, and decides which assets belong to a
// fiscal-year window at all.
package valuation

import (
	"strings"

	"github.com/lankatax/backend/internal/fiscal"
	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
)

// AppreciatedValue indexes a cost basis recorded in acquiredYear up to
// targetYear. Precious-item prices are quoted in USD, so the appreciation
// compounds the commodity index movement with the rupee's movement against
// the dollar. A zero acquisition-year index returns the cost untouched
// instead of dividing by it.
func AppreciatedValue(tbl *regime.Table, cost float64, itemType, acquiredYear, targetYear string) float64 {
	baseIndex := tbl.CommodityIndex(itemType, acquiredYear)
	baseRate := tbl.FXRate("USD", acquiredYear)
	if baseIndex == 0 || baseRate == 0 {
		return cost
	}
	indexFactor := tbl.CommodityIndex(itemType, targetYear) / baseIndex
	fxFactor := tbl.FXRate("USD", targetYear) / baseRate
	return cost * indexFactor * fxFactor
}

// ForeignCurrencyValue converts a financial asset's value into rupees for
// targetYear. The fiscal-year balance record wins over the stored market
// value; rupee accounts pass through unchanged.
func ForeignCurrencyValue(tbl *regime.Table, asset *model.Asset, targetYear string) float64 {
	code := strings.ToUpper(strings.TrimSpace(asset.Currency))
	if code == "" || code == "LKR" {
		return asset.MarketValue
	}
	rate := tbl.FXRate(code, targetYear)
	if b := asset.BalanceFor(targetYear); b != nil {
		return b.ClosingBalance * rate
	}
	return asset.MarketValue * rate
}

// CurrentValue is the fiscal-year market value of any asset: indexed for
// jewellery, FX-converted for financial assets, stored value otherwise.
func CurrentValue(tbl *regime.Table, asset *model.Asset, targetYear string) float64 {
	switch asset.Category {
	case model.AssetJewellery:
		acquired := fiscal.YearOf(asset.AcquiredDate)
		return AppreciatedValue(tbl, asset.Cost, asset.ItemType, acquired, targetYear)
	case model.AssetFinancial:
		return ForeignCurrencyValue(tbl, asset, targetYear)
	default:
		return asset.MarketValue
	}
}

// InScope reports whether an asset belongs to the fiscal-year window named
// by label. Assets acquired after the window end are out; a disposal or
// closure strictly before the window start takes the asset out; a terminal
// marker missing its date is an invalid state and always excludes the asset.
func InScope(asset *model.Asset, label string) bool {
	start, end := fiscal.Range(label)
	if asset.AcquiredDate.After(end) {
		return false
	}
	if asset.Disposal != nil {
		if asset.Disposal.Date == nil || asset.Disposal.Date.Before(start) {
			return false
		}
	}
	if asset.Closure != nil {
		if asset.Closure.Date == nil || asset.Closure.Date.Before(start) {
			return false
		}
	}
	return true
}

// FilterInScope returns the subset of assets inside the fiscal-year window,
// preserving order.
func FilterInScope(assets []*model.Asset, label string) []*model.Asset {
	out := make([]*model.Asset, 0, len(assets))
	for _, a := range assets {
		if InScope(a, label) {
			out = append(out, a)
		}
	}
	return out
}
