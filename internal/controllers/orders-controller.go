package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrdersController handles HTTP requests related to orders and line items
type OrdersController interface {
	// GetOrders retrieves orders matching the query filters
	GetOrders(ctx *gin.Context)
	// GetOrderAmount counts orders within a date/time window
	GetOrderAmount(ctx *gin.Context)
	// GetProfit computes total profit over a date/time window
	GetProfit(ctx *gin.Context)
	// AddOrder creates a new order
	AddOrder(ctx *gin.Context)
	// UpdateOrder replaces an order's date and time
	UpdateOrder(ctx *gin.Context)
	// AddOrderDetail creates a new line item
	AddOrderDetail(ctx *gin.Context)
	// UpdateOrderDetail replaces an existing line item
	UpdateOrderDetail(ctx *gin.Context)
	// DeleteOrderDetail removes a line item
	DeleteOrderDetail(ctx *gin.Context)
}

type ordersController struct {
	service services.OrdersService
}

// NewOrdersController creates a new instance of OrdersController
func NewOrdersController(service services.OrdersService) *ordersController {
	return &ordersController{service: service}
}

// GetOrders godoc
// @Summary List orders
// @Description Get orders filtered by id or by date/time window with pagination
// @Tags orders
// @Produce json
// @Param OrderId query int false "Return only the order with this id, ignoring other filters"
// @Param StartDate query string false "Start date (YYYY-MM-DD)"
// @Param EndDate query string false "End date (YYYY-MM-DD)"
// @Param StartTime query string false "Start time of day (HH:MM:SS)"
// @Param EndTime query string false "End time of day (HH:MM:SS)"
// @Param PN query int false "Page number (default 1)"
// @Param PS query int false "Page size (default 1000)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/orders [get]
func (c *ordersController) GetOrders(ctx *gin.Context) {
	var query services.GetOrdersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	orders, err := c.service.GetOrders(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderAmount godoc
// @Summary Count orders
// @Description Count orders within a date/time window
// @Tags orders
// @Produce json
// @Param StartDate query string false "Start date (YYYY-MM-DD)"
// @Param EndDate query string false "End date (YYYY-MM-DD)"
// @Param StartTime query string false "Start time of day (HH:MM:SS)"
// @Param EndTime query string false "End time of day (HH:MM:SS)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/orders/OrderAmount [get]
func (c *ordersController) GetOrderAmount(ctx *gin.Context) {
	var query services.GetOrderAmountQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	amount, err := c.service.GetOrderAmount(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order_amount": amount})
}

// GetProfit godoc
// @Summary Compute profit
// @Description Sum price*quantity over line items within a date/time window, optionally restricted to specific pizza ids
// @Tags orders
// @Produce json
// @Param StartDate query string false "Start date (YYYY-MM-DD)"
// @Param EndDate query string false "End date (YYYY-MM-DD)"
// @Param StartTime query string false "Start time of day (HH:MM:SS)"
// @Param EndTime query string false "End time of day (HH:MM:SS)"
// @Param PizzaIds query []string false "Restrict to these pizza ids (case-insensitive)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/orders/Profit [get]
func (c *ordersController) GetProfit(ctx *gin.Context) {
	var query services.GetProfitQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	totalProfit, err := c.service.GetProfit(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profit"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"total_profit": totalProfit})
}

// AddOrder godoc
// @Summary Create an order
// @Description Create a new order for the given timestamp; the order id is assigned by the service
// @Tags orders
// @Produce json
// @Param dateTime query string true "Order timestamp (RFC3339 or YYYY-MM-DDTHH:MM:SS)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/Order [post]
func (c *ordersController) AddOrder(ctx *gin.Context) {
	dateTime, err := parseDateTime(ctx.Query("dateTime"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateTime format"})
		return
	}

	outcome := c.service.AddOrder(dateTime)
	respondOutcome(ctx, outcome, http.StatusCreated)
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Replace an existing order's date and time
// @Tags orders
// @Produce json
// @Param OrderId query int true "Order id"
// @Param DateTime query string true "New timestamp (RFC3339 or YYYY-MM-DDTHH:MM:SS)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/Order [put]
func (c *ordersController) UpdateOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Query("OrderId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OrderId"})
		return
	}
	dateTime, err := parseDateTime(ctx.Query("DateTime"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid DateTime format"})
		return
	}

	outcome := c.service.UpdateOrder(orderID, dateTime)
	respondOutcome(ctx, outcome, http.StatusOK)
}

// AddOrderDetail godoc
// @Summary Create a line item
// @Description Add a pizza-quantity line item to an existing order
// @Tags orders
// @Produce json
// @Param OrderId query int true "Order id"
// @Param PizzaId query string true "Pizza id"
// @Param Quantity query int true "Quantity (must be greater than 0)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/OrderDetail [post]
func (c *ordersController) AddOrderDetail(ctx *gin.Context) {
	var params struct {
		OrderID  int64  `form:"OrderId" binding:"required"`
		PizzaID  string `form:"PizzaId" binding:"required"`
		Quantity int    `form:"Quantity"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	outcome := c.service.AddOrderDetail(params.OrderID, params.PizzaID, params.Quantity)
	respondOutcome(ctx, outcome, http.StatusCreated)
}

// UpdateOrderDetail godoc
// @Summary Update a line item
// @Description Replace all fields of an existing line item
// @Tags orders
// @Produce json
// @Param OrderDetailsId query int true "Line item id"
// @Param OrderId query int true "Order id"
// @Param PizzaId query string true "Pizza id"
// @Param Quantity query int true "Quantity (must be greater than 0)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/OrderDetail [put]
func (c *ordersController) UpdateOrderDetail(ctx *gin.Context) {
	var params struct {
		OrderDetailsID int64  `form:"OrderDetailsId" binding:"required"`
		OrderID        int64  `form:"OrderId" binding:"required"`
		PizzaID        string `form:"PizzaId" binding:"required"`
		Quantity       int    `form:"Quantity"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	outcome := c.service.UpdateOrderDetail(params.OrderDetailsID, params.OrderID, params.PizzaID, params.Quantity)
	respondOutcome(ctx, outcome, http.StatusOK)
}

// DeleteOrderDetail godoc
// @Summary Delete a line item
// @Description Remove a line item by its id
// @Tags orders
// @Produce json
// @Param orderDetailId query int true "Line item id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/OrderDetail [delete]
func (c *ordersController) DeleteOrderDetail(ctx *gin.Context) {
	orderDetailID, err := strconv.ParseInt(ctx.Query("orderDetailId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderDetailId"})
		return
	}

	outcome := c.service.DeleteOrderDetail(orderDetailID)
	respondOutcome(ctx, outcome, http.StatusOK)
}
