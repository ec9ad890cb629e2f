package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/money"
)

const seedDateLayout = "2006-01-02"

// SeedFile — формат файла начального каталога.
//
//	{"products": [{"name": "Milk", "price": "2.50",
//	  "lots": [{"id": "lot1", "qty": 3, "expires_at": "2024-01-01"}]}]}
type SeedFile struct {
	Products []SeedProduct `json:"products"`
}

// SeedProduct описывает продукт с лотами.
type SeedProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Lots        []SeedLot       `json:"lots"`
}

// SeedLot описывает партию товара; expires_at в формате YYYY-MM-DD.
type SeedLot struct {
	ID        string `json:"id"`
	Qty       int32  `json:"qty"`
	ExpiresAt string `json:"expires_at"`
}

// ParseSeed читает и проверяет сид-файл.
func ParseSeed(r io.Reader) (SeedFile, error) {
	var seed SeedFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return SeedFile{}, fmt.Errorf("decode seed: %w", err)
	}
	if len(seed.Products) == 0 {
		return SeedFile{}, errors.New("seed has no products")
	}
	return seed, nil
}

func (p SeedProduct) toDomain() (domain.Product, []domain.Lot, error) {
	price, err := money.ToMinor(p.Price)
	if err != nil {
		return domain.Product{}, nil, fmt.Errorf("product %s: %w", p.Name, err)
	}
	product := domain.Product{Name: p.Name, Description: p.Description, PriceMinor: price}

	lots := make([]domain.Lot, 0, len(p.Lots))
	for _, l := range p.Lots {
		expires, err := time.Parse(seedDateLayout, l.ExpiresAt)
		if err != nil {
			return domain.Product{}, nil, fmt.Errorf("product %s lot %s: %w", p.Name, l.ID, err)
		}
		lots = append(lots, domain.Lot{ID: l.ID, ProductName: p.Name, Qty: l.Qty, ExpiresAt: expires.UTC()})
	}
	return product, lots, nil
}

// applySeed загружает каталог в склад. Лоты продукта, у которого они уже
// есть, повторно не добавляются, так что перезапуск с тем же файлом безопасен.
func applySeed(ctx context.Context, store inventoryStore, seed SeedFile, logger *log.Entry) error {
	for _, p := range seed.Products {
		product, lots, err := p.toDomain()
		if err != nil {
			return err
		}

		existing, err := store.ListLots(ctx, product.Name)
		switch {
		case err == nil && len(existing) > 0:
			logger.WithField("product", product.Name).Debug("product already stocked, lots skipped")
			lots = nil
		case err != nil && !errors.Is(err, domain.ErrProductNotFound):
			return fmt.Errorf("check product %s: %w", product.Name, err)
		}

		if err := store.AddProduct(ctx, product, lots...); err != nil {
			return fmt.Errorf("seed product %s: %w", product.Name, err)
		}
	}
	logger.WithField("products", len(seed.Products)).Info("catalog seeded")
	return nil
}

func loadSeedFile(ctx context.Context, path string, store inventoryStore, logger *log.Entry) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seed, err := ParseSeed(f)
	if err != nil {
		return err
	}
	return applySeed(ctx, store, seed, logger.WithField("seed", path))
}
