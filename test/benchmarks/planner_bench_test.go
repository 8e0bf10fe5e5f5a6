// test/benchmarks/planner_bench_test.go
package benchmarks

import (
	"testing"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/services"
)

func BenchmarkComputeNeeded(b *testing.B) {
	stock := benchStock(1000)
	opts := services.DefaultNeedOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = services.ComputeNeeded(stock, opts)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	stock := benchStock(100)
	suppliers := benchSuppliers(8, stock)
	needed := services.ComputeNeeded(stock, services.DefaultNeedOptions())
	logistics := services.DefaultLogisticsConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := needed[i%len(needed)]
		for j := range suppliers {
			_ = services.Evaluate(item, suppliers[j], logistics)
		}
	}
}

func BenchmarkRank(b *testing.B) {
	stock := benchStock(100)
	suppliers := benchSuppliers(8, stock)
	needed := services.ComputeNeeded(stock, services.DefaultNeedOptions())
	logistics := services.DefaultLogisticsConfig()

	breakdowns := make([][]domain.CostBreakdown, len(needed))
	for i, item := range needed {
		for j := range suppliers {
			if bd := services.Evaluate(item, suppliers[j], logistics); bd != nil {
				breakdowns[i] = append(breakdowns[i], *bd)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % len(needed)
		_ = services.Rank(needed[idx], breakdowns[idx], nil)
	}
}

func BenchmarkAggregate(b *testing.B) {
	stock := benchStock(500)
	suppliers := benchSuppliers(12, stock)
	needed := services.ComputeNeeded(stock, services.DefaultNeedOptions())
	logistics := services.DefaultLogisticsConfig()

	options := make([]domain.PurchaseOption, 0, len(needed))
	for _, item := range needed {
		var bds []domain.CostBreakdown
		for j := range suppliers {
			if bd := services.Evaluate(item, suppliers[j], logistics); bd != nil {
				bds = append(bds, *bd)
			}
		}
		if opt := services.Rank(item, bds, nil); opt != nil {
			options = append(options, *opt)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = services.Aggregate(options, needed)
	}
}

// BenchmarkFullPipeline runs need derivation through aggregation in one
// pass, the same sequence the planner service executes per request.
func BenchmarkFullPipeline(b *testing.B) {
	sizes := []struct {
		name      string
		items     int
		suppliers int
	}{
		{"small_50x4", 50, 4},
		{"medium_500x8", 500, 8},
		{"large_2000x16", 2000, 16},
	}

	for _, size := range sizes {
		stock := benchStock(size.items)
		suppliers := benchSuppliers(size.suppliers, stock)
		opts := services.DefaultNeedOptions()
		logistics := services.DefaultLogisticsConfig()

		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				needed := services.ComputeNeeded(stock, opts)
				options := make([]domain.PurchaseOption, 0, len(needed))
				for _, item := range needed {
					var bds []domain.CostBreakdown
					for j := range suppliers {
						if bd := services.Evaluate(item, suppliers[j], logistics); bd != nil {
							bds = append(bds, *bd)
						}
					}
					if opt := services.Rank(item, bds, nil); opt != nil {
						options = append(options, *opt)
					}
				}
				_ = services.Aggregate(options, needed)
			}
		})
	}
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("NeededItem", func(b *testing.B) {
		stock := benchStock(1)
		opts := services.DefaultNeedOptions()

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = services.ComputeNeeded(stock, opts)
		}
	})

	b.Run("RoutePlan", func(b *testing.B) {
		stock := benchStock(100)
		needed := services.ComputeNeeded(stock, services.DefaultNeedOptions())

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = services.Aggregate(nil, needed)
		}
	})
}
