package services

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PizzaType{}, &models.Pizza{}, &models.Order{}, &models.OrderDetail{})
	require.NoError(t, err)

	return db
}

func day(value string) *time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return &d
}

func clockOf(value string) *string {
	return &value
}

func seedOrder(t *testing.T, db *gorm.DB, id int64, date, timeOfDay string) {
	t.Helper()
	order := models.Order{OrderID: id, Date: day(date), Time: clockOf(timeOfDay)}
	require.NoError(t, db.Create(&order).Error)
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.PizzaType{PizzaTypeID: "margherita", Name: "Margherita"}).Error)
	require.NoError(t, db.Create(&models.PizzaType{PizzaTypeID: "pepperoni", Name: "Pepperoni"}).Error)
	require.NoError(t, db.Create(&models.Pizza{PizzaID: "margherita_m", PizzaTypeID: "margherita", Size: "M", Price: 10.0}).Error)
	require.NoError(t, db.Create(&models.Pizza{PizzaID: "pepperoni_l", PizzaTypeID: "pepperoni", Size: "L", Price: 5.0}).Error)
}

func TestGetOrdersByOrderID(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 5, "2024-01-10", "12:00:00")
	seedOrder(t, db, 7, "2024-02-20", "18:30:00")

	// Every other filter would exclude order 7; the id shortcut ignores them.
	orderID := int64(7)
	orders, err := service.GetOrders(GetOrdersQuery{
		OrderID: &orderID,
		TimeWindow: TimeWindow{
			StartDate: "2030-01-01",
			EndDate:   "2030-01-02",
			StartTime: "00:00:00",
			EndTime:   "00:00:01",
		},
		PS: 1,
		PN: 99,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].OrderID)
}

func TestGetOrdersByOrderIDNoMatch(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	orderID := int64(42)
	orders, err := service.GetOrders(GetOrdersQuery{OrderID: &orderID})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrdersDateTimeWindow(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 1, "2024-01-05", "09:00:00")
	seedOrder(t, db, 2, "2024-01-15", "12:00:00")
	seedOrder(t, db, 3, "2024-01-15", "23:30:00")
	seedOrder(t, db, 4, "2024-02-01", "12:00:00")

	orders, err := service.GetOrders(GetOrdersQuery{
		TimeWindow: TimeWindow{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-31",
			StartTime: "10:00:00",
			EndTime:   "13:00:00",
		},
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].OrderID)
}

func TestGetOrdersPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	for i := int64(1); i <= 5; i++ {
		seedOrder(t, db, i, "2024-03-01", "12:00:00")
	}

	query := GetOrdersQuery{
		TimeWindow: TimeWindow{StartDate: "2024-03-01", EndDate: "2024-03-01"},
		PS:         2,
		PN:         2,
	}
	orders, err := service.GetOrders(query)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(3), orders[0].OrderID)
	assert.Equal(t, int64(4), orders[1].OrderID)
}

func TestGetOrdersDefaultsPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 1, "2024-03-01", "12:00:00")
	seedOrder(t, db, 2, "2024-03-02", "12:00:00")

	// PS and PN at or below zero fall back to a 1000-row first page.
	orders, err := service.GetOrders(GetOrdersQuery{
		TimeWindow: TimeWindow{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		PS:         -5,
		PN:         0,
	})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGetOrderAmount(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 1, "2024-01-05", "09:00:00")
	seedOrder(t, db, 2, "2024-01-15", "12:00:00")
	seedOrder(t, db, 3, "2024-02-20", "12:00:00")

	amount, err := service.GetOrderAmount(GetOrderAmountQuery{
		TimeWindow: TimeWindow{StartDate: "2024-01-01", EndDate: "2024-01-31"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), amount)
}

func TestGetProfit(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedCatalog(t, db)
	seedOrder(t, db, 1, "2024-01-10", "12:00:00")
	require.NoError(t, db.Create(&models.OrderDetail{OrderDetailsID: 1, OrderID: 1, PizzaID: "margherita_m", Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.OrderDetail{OrderDetailsID: 2, OrderID: 1, PizzaID: "pepperoni_l", Quantity: 3}).Error)

	window := TimeWindow{StartDate: "2024-01-01", EndDate: "2024-01-31"}

	totalProfit, err := service.GetProfit(GetProfitQuery{TimeWindow: window})
	require.NoError(t, err)
	assert.InDelta(t, 35.0, totalProfit, 0.001) // 2*10.0 + 3*5.0

	// The pizza-id filter is case-insensitive.
	totalProfit, err = service.GetProfit(GetProfitQuery{
		TimeWindow: window,
		PizzaIDs:   []string{"MARGHERITA_M"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, totalProfit, 0.001)
}

func TestGetProfitNoMatches(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	totalProfit, err := service.GetProfit(GetProfitQuery{
		TimeWindow: TimeWindow{StartDate: "2024-01-01", EndDate: "2024-01-31"},
	})
	require.NoError(t, err)
	assert.Zero(t, totalProfit)
}

func TestAddOrderAssignsNextID(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 1, "2024-01-01", "10:00:00")
	seedOrder(t, db, 2, "2024-01-02", "10:00:00")
	seedOrder(t, db, 3, "2024-01-03", "10:00:00")

	outcome := service.AddOrder(time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC))
	require.True(t, outcome.Success())

	var order models.Order
	require.NoError(t, db.First(&order, "order_id = ?", 4).Error)
	require.NotNil(t, order.Time)
	assert.Equal(t, "18:30:00", *order.Time)
}

func TestAddOrderEmptyTable(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	outcome := service.AddOrder(time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC))
	require.True(t, outcome.Success())

	var order models.Order
	require.NoError(t, db.First(&order, "order_id = ?", 1).Error)
}

func TestUpdateOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedOrder(t, db, 1, "2024-01-01", "10:00:00")

	outcome := service.UpdateOrder(1, time.Date(2024, 6, 15, 20, 45, 0, 0, time.UTC))
	require.True(t, outcome.Success())

	var order models.Order
	require.NoError(t, db.First(&order, "order_id = ?", 1).Error)
	require.NotNil(t, order.Time)
	assert.Equal(t, "20:45:00", *order.Time)
	require.NotNil(t, order.Date)
	assert.Equal(t, "2024-06-15", order.Date.Format("2006-01-02"))
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	outcome := service.UpdateOrder(99, time.Now())
	assert.Equal(t, models.StatusNotFound, outcome.Status)
	assert.Equal(t, "Order ID does not exist.", outcome.Message)
}

func TestAddOrderDetail(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedCatalog(t, db)
	seedOrder(t, db, 1, "2024-01-10", "12:00:00")
	require.NoError(t, db.Create(&models.OrderDetail{OrderDetailsID: 10, OrderID: 1, PizzaID: "pepperoni_l", Quantity: 1}).Error)

	outcome := service.AddOrderDetail(1, "margherita_m", 2)
	require.True(t, outcome.Success())

	var detail models.OrderDetail
	require.NoError(t, db.First(&detail, "order_details_id = ?", 11).Error)
	assert.Equal(t, int64(1), detail.OrderID)
	assert.Equal(t, "margherita_m", detail.PizzaID)
	assert.Equal(t, 2, detail.Quantity)
}

func TestAddOrderDetailRejections(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedCatalog(t, db)
	seedOrder(t, db, 1, "2024-01-10", "12:00:00")

	testCases := []struct {
		name     string
		orderID  int64
		pizzaID  string
		quantity int
		message  string
	}{
		{
			name:     "quantity zero",
			orderID:  1,
			pizzaID:  "margherita_m",
			quantity: 0,
			message:  "Quantity must be greater than 0.",
		},
		{
			name:     "quantity negative",
			orderID:  1,
			pizzaID:  "margherita_m",
			quantity: -3,
			message:  "Quantity must be greater than 0.",
		},
		{
			name:     "order does not exist",
			orderID:  999,
			pizzaID:  "x",
			quantity: 2,
			message:  "Order ID does not exist.",
		},
		{
			name:     "pizza does not exist",
			orderID:  1,
			pizzaID:  "calzone_m",
			quantity: 2,
			message:  "Pizza ID does not exist.",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			outcome := service.AddOrderDetail(tt.orderID, tt.pizzaID, tt.quantity)
			assert.Equal(t, models.StatusValidationError, outcome.Status)
			assert.Equal(t, tt.message, outcome.Message)
		})
	}

	// None of the rejected requests wrote a record.
	var count int64
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateOrderDetail(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedCatalog(t, db)
	seedOrder(t, db, 1, "2024-01-10", "12:00:00")
	seedOrder(t, db, 2, "2024-01-11", "12:00:00")
	require.NoError(t, db.Create(&models.OrderDetail{OrderDetailsID: 1, OrderID: 1, PizzaID: "margherita_m", Quantity: 1}).Error)

	outcome := service.UpdateOrderDetail(1, 2, "pepperoni_l", 4)
	require.True(t, outcome.Success())

	var detail models.OrderDetail
	require.NoError(t, db.First(&detail, "order_details_id = ?", 1).Error)
	assert.Equal(t, int64(2), detail.OrderID)
	assert.Equal(t, "pepperoni_l", detail.PizzaID)
	assert.Equal(t, 4, detail.Quantity)
}

func TestUpdateOrderDetailRejections(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	outcome := service.UpdateOrderDetail(1, 1, "margherita_m", 0)
	assert.Equal(t, models.StatusValidationError, outcome.Status)
	assert.Equal(t, "Quantity must be greater than 0.", outcome.Message)

	outcome = service.UpdateOrderDetail(99, 1, "margherita_m", 2)
	assert.Equal(t, models.StatusNotFound, outcome.Status)
	assert.Equal(t, "Order detail does not exist.", outcome.Message)
}

func TestDeleteOrderDetail(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	seedCatalog(t, db)
	seedOrder(t, db, 1, "2024-01-10", "12:00:00")
	require.NoError(t, db.Create(&models.OrderDetail{OrderDetailsID: 1, OrderID: 1, PizzaID: "margherita_m", Quantity: 1}).Error)

	outcome := service.DeleteOrderDetail(1)
	require.True(t, outcome.Success())

	var count int64
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteOrderDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrdersService(db)

	outcome := service.DeleteOrderDetail(99)
	assert.Equal(t, models.StatusNotFound, outcome.Status)
	assert.Equal(t, "Order detail does not exist.", outcome.Message)
}
