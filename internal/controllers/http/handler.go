package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"store-service/internal/domain"
	"store-service/internal/services"
)

type Handler struct {
	orders    *services.OrderService
	products  *services.ProductService
	stock     *services.StockService
	customers *services.CustomerService
	auth      *services.AuthService
}

func NewHandler(orders *services.OrderService, products *services.ProductService, stock *services.StockService, customers *services.CustomerService, auth *services.AuthService) *Handler {
	return &Handler{orders: orders, products: products, stock: stock, customers: customers, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)

	r.POST("/auth/verify-pin", h.VerifyPin)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/completed", h.ListCompletedOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id", h.UpdateOrder)
	r.POST("/orders/:id/complete", h.CompleteOrder)
	r.POST("/orders/:id/cancel", h.CancelOrder)

	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.PATCH("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers", h.ListCustomers)
	r.GET("/customers/:id", h.GetCustomer)

	r.POST("/stock/in", h.StockIn)
	r.POST("/stock/adjust", h.StockAdjustment)
	r.GET("/stock/snapshot", h.StockSnapshot)
	r.GET("/stock/ledger", h.StockLedger)
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) VerifyPin(c *gin.Context) {
	var req VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.auth.VerifyPin(req.Pin) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		CustomerID:  req.CustomerID,
		DeliveryFee: req.DeliveryFee,
		Items:       toItemInputs(req.Items),
	}

	order, warnings, err := h.orders.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse{Order: order, Warnings: warnings})
}

func (h *Handler) ListOrders(c *gin.Context) {
	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.OrderStatus(raw)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + raw})
			return
		}
		status = &st
	}

	day, ok := parseDay(c, c.Query("date"))
	if !ok {
		return
	}

	orders, err := h.orders.FindAll(c.Request.Context(), status, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListCompletedOrders defaults to today so the common "what did we sell
// today" view needs no parameters.
func (h *Handler) ListCompletedOrders(c *gin.Context) {
	day, ok := parseDay(c, c.Query("date"))
	if !ok {
		return
	}
	if day == nil {
		today := time.Now()
		day = &today
	}

	status := domain.StatusCompleted
	orders, err := h.orders.FindAll(c.Request.Context(), &status, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.UpdateOrderInput{
		DeliveryFee: req.DeliveryFee,
	}
	if req.Items != nil {
		in.Items = toItemInputs(req.Items)
	}
	if req.Status != nil {
		st := domain.OrderStatus(*req.Status)
		in.Status = &st
	}

	order, warnings, err := h.orders.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse{Order: order, Warnings: warnings})
}

func (h *Handler) CompleteOrder(c *gin.Context) {
	order, err := h.orders.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	order, err := h.orders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), services.CreateProductInput{
		Name:  req.Name,
		Unit:  req.Unit,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), services.UpdateProductInput{
		Name:  req.Name,
		Unit:  req.Unit,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), services.CreateCustomerInput{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.customers.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) StockIn(c *gin.Context) {
	var req StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stock.StockIn(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *Handler) StockAdjustment(c *gin.Context) {
	var req StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stock.Adjust(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *Handler) StockSnapshot(c *gin.Context) {
	snapshot, err := h.stock.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) StockLedger(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}

	entries, err := h.stock.EntriesByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func toItemInputs(items []OrderItemRequest) []services.OrderItemInput {
	out := make([]services.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, services.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func parseDay(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return nil, false
	}
	return &day, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
