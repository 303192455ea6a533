package models

import "github.com/shopspring/decimal"

// AssetType is one of the four coarse categories a holding belongs to.
type AssetType string

const (
	AssetFixedIncome AssetType = "fixedIncome"
	AssetStocks      AssetType = "stocks"
	AssetFunds       AssetType = "funds"
	AssetOthers      AssetType = "others"
)

// AssetTypes returns the categories in their fixed display order.
func AssetTypes() []AssetType {
	return []AssetType{AssetFixedIncome, AssetStocks, AssetFunds, AssetOthers}
}

// Valid reports whether t is one of the known categories.
func (t AssetType) Valid() bool {
	switch t {
	case AssetFixedIncome, AssetStocks, AssetFunds, AssetOthers:
		return true
	}
	return false
}

// DisplayName returns the human-readable category label.
func (t AssetType) DisplayName() string {
	switch t {
	case AssetFixedIncome:
		return "Renda Fixa"
	case AssetStocks:
		return "Ações"
	case AssetFunds:
		return "Fundos de Investimento"
	default:
		return "Outros"
	}
}

// Asset is a single investment holding. Assets are created by the add
// operation and removed whole; they are never mutated in place.
// PricePerUnit is set if and only if Type is AssetStocks.
type Asset struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Type                  AssetType        `json:"type"`
	Value                 decimal.Decimal  `json:"value"`
	PricePerUnit          *decimal.Decimal `json:"pricePerUnit,omitempty"`
	DailyChange           decimal.Decimal  `json:"dailyChange"`
	DailyChangePercentage decimal.Decimal  `json:"dailyChangePercentage"`
}
