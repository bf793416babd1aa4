// Package store persists the budget record under a single key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/theirongolddev/paycheck/internal/model"
)

// RecordKey is the only key the budget record is stored under.
const RecordKey = "budgetData"

// ErrNotFound is returned by key lookups when the key is absent.
var ErrNotFound = errors.New("store: key not found")

// Port loads and saves the whole budget record.
type Port interface {
	Load(ctx context.Context) (model.BudgetRecord, error)
	Save(ctx context.Context, rec model.BudgetRecord) error
}

// Deleter is implemented by ports that can drop a key entirely.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// Reset discards the stored record. Ports without Delete get an empty record.
func Reset(ctx context.Context, p Port) error {
	if d, ok := p.(Deleter); ok {
		if err := d.Delete(ctx, RecordKey); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("resetting record: %w", err)
		}
		return nil
	}
	return p.Save(ctx, model.NewRecord())
}

func encodeRecord(rec model.BudgetRecord) ([]byte, error) {
	rec = rec.Clone()
	if !rec.Step.Valid() {
		rec.Step = model.StepIncome
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}

// decodeRecord never fails: unreadable data yields the empty record.
func decodeRecord(data []byte, log *slog.Logger) model.BudgetRecord {
	var rec model.BudgetRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Debug("discarding unreadable budget record", "key", RecordKey, "err", err, "bytes", len(data))
		return model.NewRecord()
	}
	if rec.Expenses == nil {
		rec.Expenses = []model.Expense{}
	}
	if !rec.Step.Valid() {
		rec.Step = model.StepIncome
	}
	return rec
}

// Memory is an in-process Port. The record is kept encoded so that it goes
// through the same JSON round trip as the SQLite store.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
	log  *slog.Logger
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte), log: slog.Default()}
}

// Load returns the stored record, or the empty record when none exists.
func (m *Memory) Load(_ context.Context) (model.BudgetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[RecordKey]
	if !ok {
		return model.NewRecord(), nil
	}
	return decodeRecord(data, m.log), nil
}

// Save replaces the stored record.
func (m *Memory) Save(_ context.Context, rec model.BudgetRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[RecordKey] = data
	return nil
}

// Put stores a raw value.
func (m *Memory) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(value)
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}
