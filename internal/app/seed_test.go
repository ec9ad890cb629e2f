package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/storage/memory"
)

const milkSeed = `{
  "products": [
    {"name": "Milk", "description": "1L", "price": "2.50",
     "lots": [
       {"id": "lot1", "qty": 3, "expires_at": "2024-01-01"},
       {"id": "lot2", "qty": 5, "expires_at": "2024-02-01"}
     ]}
  ]
}`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(strings.NewReader(milkSeed))
	require.NoError(t, err)
	require.Len(t, seed.Products, 1)

	product, lots, err := seed.Products[0].toDomain()
	require.NoError(t, err)
	require.Equal(t, int64(250), product.PriceMinor)
	require.Len(t, lots, 2)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), lots[0].ExpiresAt)
	require.Equal(t, "Milk", lots[1].ProductName)
}

func TestParseSeed_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":         `{"products": []}`,
		"unknown field": `{"products": [], "extra": 1}`,
		"not json":      `products`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(raw))
			require.Error(t, err)
		})
	}
}

func TestSeedProduct_InvalidValues(t *testing.T) {
	seed, err := ParseSeed(strings.NewReader(`{"products": [{"name": "Milk", "price": "2.505"}]}`))
	require.NoError(t, err)
	_, _, err = seed.Products[0].toDomain()
	require.Error(t, err)

	seed, err = ParseSeed(strings.NewReader(`{"products": [{"name": "Milk", "price": "1", "lots": [{"id": "x", "qty": 1, "expires_at": "01/02/2024"}]}]}`))
	require.NoError(t, err)
	_, _, err = seed.Products[0].toDomain()
	require.Error(t, err)
}

func TestApplySeed_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := memoryInventory{Ledger: memory.NewStore().Ledger}
	logger := log.WithField("test", "seed")

	seed, err := ParseSeed(strings.NewReader(milkSeed))
	require.NoError(t, err)

	require.NoError(t, applySeed(ctx, store, seed, logger))
	require.NoError(t, applySeed(ctx, store, seed, logger))

	lots, err := store.ListLots(ctx, "Milk")
	require.NoError(t, err)
	require.Len(t, lots, 2)
	require.Equal(t, "lot1", lots[0].ID)
	require.Equal(t, int32(3), lots[0].Qty)
	require.Equal(t, int32(5), lots[1].Qty)
}

func TestLoadSeedFile(t *testing.T) {
	ctx := context.Background()
	store := memoryInventory{Ledger: memory.NewStore().Ledger}
	logger := log.WithField("test", "seed")

	require.NoError(t, loadSeedFile(ctx, "", store, logger))

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(milkSeed), 0o600))
	require.NoError(t, loadSeedFile(ctx, path, store, logger))

	product, err := store.GetProduct(ctx, "Milk")
	require.NoError(t, err)
	require.Equal(t, "1L", product.Description)

	require.Error(t, loadSeedFile(ctx, filepath.Join(t.TempDir(), "missing.json"), store, logger))
}
