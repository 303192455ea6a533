package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType marks which ledger action produced an event.
type EventType string

const (
	EventAdded   EventType = "added"
	EventRemoved EventType = "removed"
)

// Event is an immutable audit record appended for every successful addition
// or removal of an asset. Events are never edited or deleted individually;
// the reset operation is the only bulk clear.
type Event struct {
	ID           string          `json:"id"`
	AssetID      string          `json:"assetId"`
	AssetName    string          `json:"assetName"`
	EventType    EventType       `json:"eventType"`
	Date         time.Time       `json:"date"`
	ValueAtEvent decimal.Decimal `json:"valueAtEvent"`
}
