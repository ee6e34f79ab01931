package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"replenishhq/internal/models"
	"replenishhq/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardData is everything the dashboard page renders at once
type DashboardData struct {
	TodayRevenue  float64              `json:"todayRevenue"`
	ProductCount  int                  `json:"productCount"`
	LowStockCount int                  `json:"lowStockCount"`
	OutOfStock    int                  `json:"outOfStockCount"`
	RecentSales   []models.Transaction `json:"recentSales"`
	WeeklySales   []models.SalesData   `json:"weeklySales"`
}

// --- GET: /api/reports/dashboard ---
func (h *Handlers) GetDashboard(c *gin.Context) {
	var data DashboardData

	// 1. Today's revenue (sales whose date label matches today)
	data.TodayRevenue = h.Data.GetTodayRevenue()

	// 2. Count stock levels
	for _, p := range h.Data.GetProducts() {
		data.ProductCount++
		switch p.Status {
		case models.StatusLow:
			data.LowStockCount++
		case models.StatusOut:
			data.OutOfStock++
		}
	}

	// 3. The five most recent transactions
	data.RecentSales = h.Data.GetRecentTransactions(5)

	// 4. The weekly chart series
	data.WeeklySales = h.Data.GetWeeklySales()

	c.JSON(http.StatusOK, data)
}

// --- GET: /api/reports/sales?start=1/2/2026&end=1/9/2026 ---
// Dates use the same label format sales are stored with. Both bounds
// default to the last seven days.
func (h *Handlers) GetSalesReport(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	if raw := c.Query("start"); raw != "" {
		parsed, err := utils.ParseDateLabel(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := utils.ParseDateLabel(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		end = parsed
	}

	result := h.Data.SalesSummary(start, end)
	top := h.Data.TopSellers(5)

	c.JSON(http.StatusOK, gin.H{
		"summary":    result,
		"topSelling": top,
	})
}

// --- DATA STRUCTURES FOR VALUATION REPORT ---

// ValuationItem is a single row of the inventory valuation table
type ValuationItem struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	CostPrice float64 `json:"costPrice"`
	TotalCost float64 `json:"totalCost"`
}

// CategoryGroup is one category's section of the report
type CategoryGroup struct {
	CategoryName string          `json:"categoryName"`
	Items        []ValuationItem `json:"items"`
	Subtotal     float64         `json:"subtotal"`
}

type ValuationResponse struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal float64         `json:"grandTotal"`
}

// --- GET: /api/reports/valuation ---
// GetStockValuation totals what the current inventory cost to acquire,
// grouped by category.
func (h *Handlers) GetStockValuation(c *gin.Context) {
	products := h.Data.GetProducts()

	var grandTotal float64
	groupedMap := make(map[string]*CategoryGroup)

	for _, p := range products {
		catName := p.Category
		if catName == "" {
			catName = "Uncategorized"
		}

		if _, exists := groupedMap[catName]; !exists {
			groupedMap[catName] = &CategoryGroup{
				CategoryName: catName,
				Items:        []ValuationItem{},
			}
		}

		itemTotal := float64(p.Stock) * p.Cost
		groupedMap[catName].Items = append(groupedMap[catName].Items, ValuationItem{
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  p.Stock,
			CostPrice: p.Cost,
			TotalCost: itemTotal,
		})
		groupedMap[catName].Subtotal += itemTotal
		grandTotal += itemTotal
	}

	// Stable order so the report reads the same every time
	response := ValuationResponse{GrandTotal: grandTotal, Categories: []CategoryGroup{}}
	for _, group := range groupedMap {
		response.Categories = append(response.Categories, *group)
	}
	sort.Slice(response.Categories, func(i, j int) bool {
		return response.Categories[i].CategoryName < response.Categories[j].CategoryName
	})

	c.JSON(http.StatusOK, response)
}

// --- GET: /api/reports/categories ---
func (h *Handlers) GetCategoryRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.RevenueByCategory())
}

// --- GET: /api/reports/top-sellers?limit=5 ---
func (h *Handlers) GetTopSellers(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.Data.TopSellers(limit))
}
