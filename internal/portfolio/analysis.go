package portfolio

import (
	"github.com/datarium/datarium/internal/models"
	"github.com/shopspring/decimal"
)

// categoryPalette assigns each category its chart color, indexed by the
// fixed category order.
var categoryPalette = []string{
	"#FFD700", // gold - fixed income
	"#4CAF50", // green - stocks
	"#007BFF", // blue - funds
	"#D3D3D3", // light gray - others
}

var hundred = decimal.NewFromInt(100)

// CategoryGroup is one slice of the portfolio view: a category plus the
// assets it holds, in insertion order.
type CategoryGroup struct {
	Type   models.AssetType
	Name   string
	Assets []models.Asset
}

// Summary aggregates the whole portfolio.
type Summary struct {
	TotalValue                 decimal.Decimal
	TotalDailyChange           decimal.Decimal
	TotalDailyChangePercentage decimal.Decimal
}

// Allocation is one category's share of the portfolio for the allocation
// chart.
type Allocation struct {
	Type       models.AssetType
	Name       string
	Value      decimal.Decimal
	Percentage decimal.Decimal
	Color      string
}

// GroupByCategory partitions assets into the four fixed categories in their
// display order, dropping empty categories from the result. An asset with an
// unrecognized type lands in the others bucket. Relative insertion order is
// preserved within each category.
func GroupByCategory(assets []models.Asset) []CategoryGroup {
	buckets := make(map[models.AssetType][]models.Asset, 4)
	for _, asset := range assets {
		t := asset.Type
		if !t.Valid() {
			t = models.AssetOthers
		}
		buckets[t] = append(buckets[t], asset)
	}

	groups := make([]CategoryGroup, 0, 4)
	for _, t := range models.AssetTypes() {
		if len(buckets[t]) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Type: t, Name: t.DisplayName(), Assets: buckets[t]})
	}
	return groups
}

// Summarize computes the portfolio totals. The daily-change percentage
// relates the change to the previous total (total minus change); when that
// previous total is zero the percentage is zero rather than a division
// fault.
func Summarize(assets []models.Asset) Summary {
	totalValue := decimal.Zero
	totalDailyChange := decimal.Zero
	for _, asset := range assets {
		totalValue = totalValue.Add(asset.Value)
		totalDailyChange = totalDailyChange.Add(asset.DailyChange)
	}

	previousTotal := totalValue.Sub(totalDailyChange)
	percentage := decimal.Zero
	if !previousTotal.IsZero() {
		percentage = totalDailyChange.Div(previousTotal).Mul(hundred)
	}

	return Summary{
		TotalValue:                 totalValue,
		TotalDailyChange:           totalDailyChange,
		TotalDailyChangePercentage: percentage,
	}
}

// Allocate computes each category's share of the total value. Categories
// with zero aggregate value are excluded; a zero total yields an empty
// result. Colors come from the fixed palette, indexed by category order, so
// a category keeps its color regardless of which others are present.
func Allocate(assets []models.Asset) []Allocation {
	summary := Summarize(assets)
	if summary.TotalValue.IsZero() {
		return []Allocation{}
	}

	groups := GroupByCategory(assets)
	allocations := make([]Allocation, 0, len(groups))
	order := models.AssetTypes()

	for _, group := range groups {
		value := decimal.Zero
		for _, asset := range group.Assets {
			value = value.Add(asset.Value)
		}
		if value.IsZero() {
			continue
		}

		color := ""
		for i, t := range order {
			if t == group.Type {
				color = categoryPalette[i]
				break
			}
		}

		allocations = append(allocations, Allocation{
			Type:       group.Type,
			Name:       group.Name,
			Value:      value,
			Percentage: value.Div(summary.TotalValue).Mul(hundred),
			Color:      color,
		})
	}
	return allocations
}
