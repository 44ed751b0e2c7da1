package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotSchemaComplete(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot(now, SourceURLs{Fuel: "https://fuel", Fx: "https://fx", Gold: "https://gold"})

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	// Every top-level key must be present even though nothing was
	// extracted; consumers rely on a fixed schema without existence
	// checks.
	for _, key := range []string{"app", "tz", "lastUpdated", "sources", "fuel", "fx", "gold", "debug"} {
		assert.Contains(t, doc, key)
	}

	var fuel map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["fuel"], &fuel))
	for _, key := range []string{"petrol_92", "petrol_95", "diesel_auto", "diesel_super", "kerosene"} {
		assert.Contains(t, fuel, key)
	}

	var fx map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["fx"], &fx))
	for _, key := range []string{"usd_lkr_spot", "gbp_lkr", "eur_lkr"} {
		assert.Contains(t, fx, key)
	}

	var gold map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["gold"], &gold))
	for _, key := range []string{"lkr_per_gram_24k", "lkr_per_gram_22k", "notes"} {
		assert.Contains(t, gold, key)
	}

	// Null leaves stay null, never zero.
	var quote map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(fuel["petrol_92"], &quote))
	assert.Equal(t, "null", string(quote["value"]))
	assert.Equal(t, "null", string(quote["effectiveDate"]))
}

func TestNewSnapshotColomboOffset(t *testing.T) {
	now := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC)
	snap := NewSnapshot(now, SourceURLs{})

	assert.Equal(t, "2025-06-01T12:00:00+05:30", snap.LastUpdated)
	assert.Equal(t, snap.LastUpdated, snap.Debug.RunAt)
	assert.Equal(t, AppName, snap.App)
	assert.Equal(t, Timezone, snap.Tz)
}

func TestSnapshotRunTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC)
	snap := NewSnapshot(now, SourceURLs{})
	assert.True(t, snap.RunTime().Equal(now))
}

func TestFuelPricesSetGet(t *testing.T) {
	var f FuelPrices
	v := 311.0
	f.Set(Petrol92, PriceQuote{Value: &v})

	got := f.Get(Petrol92)
	require.NotNil(t, got.Value)
	assert.Equal(t, 311.0, *got.Value)
	assert.Nil(t, f.Get(Kerosene).Value)
}
