package routes

import (
	"net/http"
	"strings"
	"time"

	"replenishhq/internal/handlers"
	"replenishhq/internal/middleware"
	"replenishhq/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint. Three tiers: public auth routes,
// routes for any logged-in user, and admin/manager-only routes.
func SetupRouter(h *handlers.Handlers, corsOrigins string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(corsOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })

	// --- Auth Routes (Public) ---
	router.POST("/login", h.Login)
	router.POST("/signup", h.Signup)

	// --- Protected Routes (Login Required) ---
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(h.Auth))
	{
		api.POST("/logout", h.Logout)
		api.GET("/me", h.Me)

		// Products
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/products", h.AddProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.PATCH("/products/:id/stock", h.UpdateProductStock)

		// Point of Sale
		api.POST("/pos/review", h.ReviewSale)
		api.POST("/pos/checkout", h.Checkout)
		api.GET("/sales", h.GetSales)
		api.GET("/sales/:id/receipt", h.GetReceipt)

		// Purchase Orders
		api.GET("/orders", h.GetOrders)
		api.POST("/orders", h.AddOrder)
		api.PATCH("/orders/:id/status", h.UpdateOrderStatus)

		// Suppliers
		api.GET("/suppliers", h.GetSuppliers)
		api.POST("/suppliers", h.AddSupplier)
		api.PUT("/suppliers/:id", h.UpdateSupplier)

		// Customers
		api.GET("/customers", h.GetCustomers)
		api.POST("/customers", h.AddCustomer)
		api.PUT("/customers/:id", h.UpdateCustomer)

		// Categories
		api.GET("/categories", h.GetCategories)
		api.POST("/categories", h.AddCategory)
		api.PUT("/categories/:id", h.UpdateCategory)

		// Stock movements
		api.GET("/stock/adjustments", h.GetAdjustments)
		api.POST("/stock/adjustments", h.AddAdjustment)
		api.GET("/stock/transfers", h.GetTransfers)
		api.POST("/stock/transfers", h.AddTransfer)
		api.PATCH("/stock/transfers/:id/status", h.UpdateTransferStatus)

		// Returns
		api.GET("/returns", h.GetReturns)
		api.POST("/returns", h.AddReturn)
		api.PATCH("/returns/:id/status", h.UpdateReturnStatus)

		// Notifications
		api.GET("/notifications", h.GetNotifications)
		api.PATCH("/notifications/:id/read", h.MarkNotificationRead)
		api.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		api.DELETE("/notifications", h.ClearNotifications)

		// Dashboard & Reports
		api.GET("/reports/dashboard", h.GetDashboard)
		api.GET("/reports/top-sellers", h.GetTopSellers)
		api.GET("/reports/categories", h.GetCategoryRevenue)

		// Profile
		api.PUT("/profile/name", h.UpdateProfileName)
		api.GET("/profile/picture", h.GetProfilePicture)
		api.PUT("/profile/picture", h.SetProfilePicture)
		api.DELETE("/profile/picture", h.RemoveProfilePicture)

		// System
		api.GET("/system/status", h.GetSystemStatus)

		// --- Admin & Manager Only ---
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.DELETE("/suppliers/:id", h.DeleteSupplier)
			admin.DELETE("/customers/:id", h.DeleteCustomer)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.GET("/reports/sales", h.GetSalesReport)
			admin.GET("/reports/valuation", h.GetStockValuation)

			admin.GET("/settings", h.GetSettings)
			admin.PUT("/settings", h.UpdateSettings)

			admin.POST("/system/reset", h.ResetData)
		}
	}

	return router
}
