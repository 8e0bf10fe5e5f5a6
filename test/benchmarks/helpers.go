// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// benchStock generates a snapshot where roughly three quarters of the
// items fall below their minimum level.
func benchStock(numItems int) []domain.StockItem {
	units := []string{"kg", "l", "pcs", "g"}

	items := make([]domain.StockItem, numItems)
	for i := 0; i < numItems; i++ {
		quantity := int64(i % 4)
		items[i] = domain.StockItem{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("item %04d", i),
			Unit:        units[i%len(units)],
			Kind:        domain.KindStock,
			Quantity:    decimal.NewFromInt(quantity),
			MinLevel:    decimal.NewFromInt(3),
			UsagePerDay: decimal.NewFromFloat(0.25 * float64(1+i%4)),
			CostPerUnit: decimal.NewFromFloat(1.5 + float64(i%20)),
			UpdatedAt:   time.Now(),
		}
	}
	return items
}

// benchSuppliers generates a supplier directory where every supplier
// offers a slice of the catalog, so most items have competing offers.
func benchSuppliers(numSuppliers int, stock []domain.StockItem) []domain.Supplier {
	suppliers := make([]domain.Supplier, numSuppliers)
	for i := 0; i < numSuppliers; i++ {
		s := domain.Supplier{
			ID:   uuid.New(),
			Name: fmt.Sprintf("supplier %02d", i),
		}
		if i%3 == 0 {
			s.Kind = domain.SupplierOnline
			s.LeadTimeDays = 1 + i%5
		} else {
			s.Kind = domain.SupplierPhysical
			distance := 1.5 * float64(1+i%6)
			s.DistanceKm = &distance
		}

		// Each supplier carries every numSuppliers-th item, offset by
		// its own index, at a slightly different price.
		for j := i; j < len(stock); j += numSuppliers {
			s.Offers = append(s.Offers, domain.ProductOffer{
				ItemID:    stock[j].ID,
				UnitPrice: stock[j].CostPerUnit.Mul(decimal.NewFromFloat(0.8 + 0.1*float64(i%5))),
				UpdatedAt: time.Now(),
			})
		}
		// Overlap: every supplier also carries the first items of the
		// catalog, so ranking has real competition to sort.
		for j := 0; j < len(stock) && j < 10; j++ {
			if j%numSuppliers == i {
				continue
			}
			s.Offers = append(s.Offers, domain.ProductOffer{
				ItemID:    stock[j].ID,
				UnitPrice: stock[j].CostPerUnit.Mul(decimal.NewFromFloat(0.9 + 0.05*float64(i))),
				UpdatedAt: time.Now(),
			})
		}
		suppliers[i] = s
	}
	return suppliers
}
