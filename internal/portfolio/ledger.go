// Package portfolio implements the portfolio ledger: per-user asset holdings
// plus the append-only event log auditing every addition and removal, kept
// consistent under every mutation.
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/models"
	"github.com/datarium/datarium/internal/storage/kv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionSource yields the active user's id, the partition key of every
// ledger read and write. The identity store satisfies this.
type SessionSource interface {
	CurrentUserID() (string, bool)
}

// AssetInput is the caller-supplied part of a new asset. Id and the daily
// change fields are assigned by the ledger.
type AssetInput struct {
	Name         string
	Type         models.AssetType
	Value        decimal.Decimal
	PricePerUnit *decimal.Decimal
}

// Validate rejects inputs before any mutation happens. PricePerUnit is
// required for stocks and rejected for every other type, which is what keeps
// the "present iff stocks" shape of persisted assets.
func (in AssetInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: asset name is required", common.ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown asset type %q", common.ErrValidation, in.Type)
	}
	if !in.Value.IsPositive() {
		return fmt.Errorf("%w: value must be a positive number", common.ErrValidation)
	}
	if in.Type == models.AssetStocks {
		if in.PricePerUnit == nil {
			return fmt.Errorf("%w: price per unit is required for stocks", common.ErrValidation)
		}
		if !in.PricePerUnit.IsPositive() {
			return fmt.Errorf("%w: price per unit must be a positive number", common.ErrValidation)
		}
	} else if in.PricePerUnit != nil {
		return fmt.Errorf("%w: price per unit is only tracked for stocks", common.ErrValidation)
	}
	return nil
}

// Ledger owns, for the current user, the held assets and the event log.
// In-memory state mirrors the persisted partitions; every mutation persists
// first and only then swaps memory, so callers never observe an uncommitted
// change. A single mutex serializes mutations against the active partition.
type Ledger struct {
	repo     kv.Repository
	sessions SessionSource
	log      logging.Logger

	mu     sync.Mutex
	assets []models.Asset
	events []models.Event
}

// NewLedger constructs an unloaded Ledger. Call Load after sign-in and after
// every user switch.
func NewLedger(repo kv.Repository, sessions SessionSource, log logging.Logger) *Ledger {
	return &Ledger{repo: repo, sessions: sessions, log: log}
}

// Load fetches both persisted partitions for the current user. With no
// active user it resets in-memory state to empty and reports success. Safe
// to call repeatedly.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	userID, ok := l.sessions.CurrentUserID()
	if !ok {
		l.assets = nil
		l.events = nil
		return nil
	}

	assets, err := l.loadAssets(ctx, userID)
	if err != nil {
		return err
	}
	events, err := l.loadEvents(ctx, userID)
	if err != nil {
		return err
	}

	l.assets = assets
	l.events = events
	return nil
}

// AddAsset creates a new asset from in and appends the companion `added`
// event. The asset list is persisted before the event log; if the event
// write fails after the asset write succeeded, the asset stays committed
// without its audit event and the error is reported.
func (l *Ledger) AddAsset(ctx context.Context, in AssetInput) (*models.Asset, error) {
	userID, ok := l.sessions.CurrentUserID()
	if !ok {
		return nil, common.ErrNoActiveUser
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	asset := models.Asset{
		ID:                    uuid.NewString(),
		Name:                  strings.TrimSpace(in.Name),
		Type:                  in.Type,
		Value:                 in.Value,
		PricePerUnit:          in.PricePerUnit,
		DailyChange:           decimal.Zero,
		DailyChangePercentage: decimal.Zero,
	}

	updatedAssets := append(append([]models.Asset{}, l.assets...), asset)
	if err := l.saveAssets(ctx, userID, updatedAssets); err != nil {
		return nil, err
	}
	l.assets = updatedAssets

	if err := l.appendEvent(ctx, userID, asset, models.EventAdded); err != nil {
		// The asset is committed but its audit event is not; the log records
		// the gap and the next successful mutation resumes normal pairing.
		l.log.Error(ctx, "asset persisted without its audit event",
			"user_id", userID, "asset_id", asset.ID, "error", err)
		return nil, err
	}

	l.log.Info(ctx, "asset added", "user_id", userID, "asset_id", asset.ID, "name", asset.Name)
	return &asset, nil
}

// RemoveAsset removes the asset with the given id and appends the companion
// `removed` event carrying the removed snapshot. An unknown id is a benign
// no-op reported with a warning, not an error.
func (l *Ledger) RemoveAsset(ctx context.Context, assetID string) error {
	userID, ok := l.sessions.CurrentUserID()
	if !ok {
		return common.ErrNoActiveUser
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, a := range l.assets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.log.Warn(ctx, "asset not found for removal", "user_id", userID, "asset_id", assetID)
		return nil
	}
	removed := l.assets[idx]

	updatedAssets := make([]models.Asset, 0, len(l.assets)-1)
	updatedAssets = append(updatedAssets, l.assets[:idx]...)
	updatedAssets = append(updatedAssets, l.assets[idx+1:]...)

	if err := l.saveAssets(ctx, userID, updatedAssets); err != nil {
		return err
	}
	l.assets = updatedAssets

	if err := l.appendEvent(ctx, userID, removed, models.EventRemoved); err != nil {
		l.log.Error(ctx, "asset removed without its audit event",
			"user_id", userID, "asset_id", removed.ID, "error", err)
		return err
	}

	l.log.Info(ctx, "asset removed", "user_id", userID, "asset_id", removed.ID, "name", removed.Name)
	return nil
}

// ResetPortfolioData deletes both persisted partitions for the current user,
// clears in-memory state, and reloads (yielding empty collections, which
// confirms the clear). This is the only bulk-mutation entry point.
func (l *Ledger) ResetPortfolioData(ctx context.Context) error {
	userID, ok := l.sessions.CurrentUserID()
	if !ok {
		return common.ErrNoActiveUser
	}

	l.mu.Lock()
	l.assets = nil
	l.events = nil
	l.mu.Unlock()

	if err := l.repo.Delete(ctx, kv.AssetsKey(userID)); err != nil {
		l.log.Error(ctx, "failed to clear asset partition", "user_id", userID, "error", err)
		return err
	}
	if err := l.repo.Delete(ctx, kv.EventsKey(userID)); err != nil {
		l.log.Error(ctx, "failed to clear event partition", "user_id", userID, "error", err)
		return err
	}

	l.log.Info(ctx, "portfolio data reset", "user_id", userID)
	return l.Load(ctx)
}

// Assets returns a copy of the held assets in insertion order.
func (l *Ledger) Assets() []models.Asset {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Asset{}, l.assets...)
}

// Events returns a copy of the event log in append (chronological) order.
func (l *Ledger) Events() []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Event{}, l.events...)
}

// History returns the events sorted by date, newest first. Display order is
// computed at read time; the persisted log stays in append order.
func (l *Ledger) History() []models.Event {
	events := l.Events()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	return events
}

func (l *Ledger) appendEvent(ctx context.Context, userID string, asset models.Asset, kind models.EventType) error {
	event := models.Event{
		ID:           uuid.NewString(),
		AssetID:      asset.ID,
		AssetName:    asset.Name,
		EventType:    kind,
		Date:         time.Now().UTC(),
		ValueAtEvent: asset.Value,
	}

	updatedEvents := append(append([]models.Event{}, l.events...), event)
	if err := l.saveEvents(ctx, userID, updatedEvents); err != nil {
		return err
	}
	l.events = updatedEvents
	return nil
}

func (l *Ledger) loadAssets(ctx context.Context, userID string) ([]models.Asset, error) {
	data, err := l.repo.Get(ctx, kv.AssetsKey(userID))
	if err != nil {
		l.log.Error(ctx, "failed to load assets", "user_id", userID, "error", err)
		return nil, err
	}
	if data == nil {
		return []models.Asset{}, nil
	}

	var assets []models.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		l.log.Error(ctx, "failed to decode assets", "user_id", userID, "error", err)
		return nil, err
	}
	return assets, nil
}

func (l *Ledger) loadEvents(ctx context.Context, userID string) ([]models.Event, error) {
	data, err := l.repo.Get(ctx, kv.EventsKey(userID))
	if err != nil {
		l.log.Error(ctx, "failed to load events", "user_id", userID, "error", err)
		return nil, err
	}
	if data == nil {
		return []models.Event{}, nil
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		l.log.Error(ctx, "failed to decode events", "user_id", userID, "error", err)
		return nil, err
	}
	return events, nil
}

func (l *Ledger) saveAssets(ctx context.Context, userID string, assets []models.Asset) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return err
	}
	if err := l.repo.Set(ctx, kv.AssetsKey(userID), data); err != nil {
		l.log.Error(ctx, "failed to persist assets", "user_id", userID, "error", err)
		return err
	}
	return nil
}

func (l *Ledger) saveEvents(ctx context.Context, userID string, events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	if err := l.repo.Set(ctx, kv.EventsKey(userID), data); err != nil {
		l.log.Error(ctx, "failed to persist events", "user_id", userID, "error", err)
		return err
	}
	return nil
}
