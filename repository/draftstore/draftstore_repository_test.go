package draftstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
	"github.com/openmarket/listing-service/repository/draftstore"
)

// memKV is an in-memory stand-in for the redis-backed store. failing makes
// every operation error to exercise the degrade paths.
type memKV struct {
	mu      sync.Mutex
	data    map[string]string
	failing bool
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return "", errors.New("kv down")
	}
	return m.data[key], nil
}

func (m *memKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("kv down")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("kv down")
	}
	delete(m.data, key)
	return nil
}

func (m *memKV) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return false, errors.New("kv down")
	}
	_, ok := m.data[key]
	return ok, nil
}

func sampleSnapshot() *model.DraftSnapshot {
	return &model.DraftSnapshot{
		FormData: model.DraftFormData{
			Type:        constant.ListingTypeProduct,
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse",
			Category:    "electronics",
			Price:       "150000",
			Stock:       "10",
			IsAvailable: true,
		},
		Images:          []string{"https://cdn.example.com/mouse.jpg"},
		Variants:        []model.Variant{},
		VariantsEnabled: false,
		SavedAt:         time.Now().UTC().Truncate(time.Second),
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := draftstore.NewAdapter(kv, "listing_draft:1:create", time.Hour)

	assert.False(t, a.Exists(ctx))
	assert.Nil(t, a.Load(ctx))

	snap := sampleSnapshot()
	require.True(t, a.Save(ctx, snap))
	assert.True(t, a.Exists(ctx))

	got := a.Load(ctx)
	require.NotNil(t, got)
	assert.Equal(t, snap.FormData, got.FormData)
	assert.Equal(t, snap.Images, got.Images)
	assert.True(t, got.SavedAt.Equal(snap.SavedAt))

	a.Clear(ctx)
	assert.False(t, a.Exists(ctx))
	assert.Nil(t, a.Load(ctx))
}

// Last write wins; there is no arbitration between writers of one slot.
func TestAdapter_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := draftstore.NewAdapter(kv, "listing_draft:1:create", time.Hour)

	first := sampleSnapshot()
	first.FormData.Name = "First"
	second := sampleSnapshot()
	second.FormData.Name = "Second"

	require.True(t, a.Save(ctx, first))
	require.True(t, a.Save(ctx, second))

	got := a.Load(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "Second", got.FormData.Name)
}

// Failures never propagate as errors; they surface as false/nil.
func TestAdapter_DegradesOnFailure(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.failing = true
	a := draftstore.NewAdapter(kv, "listing_draft:1:create", time.Hour)

	assert.False(t, a.Save(ctx, sampleSnapshot()))
	assert.Nil(t, a.Load(ctx))
	assert.False(t, a.Exists(ctx))
	a.Clear(ctx)
}

func TestAdapter_CorruptSlotCountsAsMissing(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data["listing_draft:1:create"] = "{not json"
	a := draftstore.NewAdapter(kv, "listing_draft:1:create", time.Hour)

	assert.Nil(t, a.Load(ctx))
}

func TestAdapter_EmptyKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	a := draftstore.NewAdapter(newMemKV(), "", time.Hour)

	assert.False(t, a.Save(ctx, sampleSnapshot()))
	assert.Nil(t, a.Load(ctx))
	assert.False(t, a.Exists(ctx))
}
