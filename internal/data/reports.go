package data

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"replenishhq/internal/utils"
)

// SalesReportResult is the headline summary for a date range.
type SalesReportResult struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCount   int     `json:"totalCount"`
}

// SalesSummary totals sales whose date label parses into [start, end].
// Sales with unparseable labels are skipped rather than failing the
// whole report.
func (m *Manager) SalesSummary(start, end time.Time) SalesReportResult {
	var result SalesReportResult
	revenue := decimal.Zero
	for _, sale := range m.GetSales() {
		day, err := utils.ParseDateLabel(sale.Date)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		revenue = revenue.Add(decimal.NewFromFloat(sale.Total))
		result.TotalCount++
	}
	result.TotalRevenue = revenue.InexactFloat64()
	return result
}

// TopSeller is one row of the best-sellers ranking.
type TopSeller struct {
	ProductName string  `json:"productName"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// TopSellers ranks products by units sold across the retained sales
// history, highest first, at most n rows.
func (m *Manager) TopSellers(n int) []TopSeller {
	sold := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	for _, sale := range m.GetSales() {
		for _, item := range sale.Items {
			sold[item.ProductName] += item.Quantity
			revenue[item.ProductName] = revenue[item.ProductName].
				Add(decimal.NewFromFloat(item.Total))
		}
	}

	out := make([]TopSeller, 0, len(sold))
	for name, qty := range sold {
		out = append(out, TopSeller{
			ProductName: name,
			Sold:        qty,
			Revenue:     revenue[name].InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].ProductName < out[j].ProductName
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CategoryRevenue is one category's slice of total sales revenue.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Sold     int     `json:"sold"`
	Revenue  float64 `json:"revenue"`
}

// RevenueByCategory splits sales revenue across product categories.
// Items whose product no longer exists fall under "Uncategorized".
func (m *Manager) RevenueByCategory() []CategoryRevenue {
	categoryOf := make(map[int]string)
	for _, p := range m.GetProducts() {
		categoryOf[p.ID] = p.Category
	}

	sold := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	for _, sale := range m.GetSales() {
		for _, item := range sale.Items {
			cat := categoryOf[item.ProductID]
			if cat == "" {
				cat = "Uncategorized"
			}
			sold[cat] += item.Quantity
			revenue[cat] = revenue[cat].Add(decimal.NewFromFloat(item.Total))
		}
	}

	out := make([]CategoryRevenue, 0, len(sold))
	for cat, qty := range sold {
		out = append(out, CategoryRevenue{
			Category: cat,
			Sold:     qty,
			Revenue:  revenue[cat].InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}
