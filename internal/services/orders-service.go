package services

import (
	"errors"
	"time"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrdersService provides query and mutation operations over orders and their
// line items.
type OrdersService interface {
	// GetOrders retrieves a page of orders matching the query filters.
	GetOrders(query GetOrdersQuery) ([]models.Order, error)
	// GetOrderAmount counts the orders within the query's date/time window.
	GetOrderAmount(query GetOrderAmountQuery) (int64, error)
	// GetProfit sums price*quantity over the line items matching the query.
	GetProfit(query GetProfitQuery) (float64, error)
	// AddOrder creates an order for the given timestamp with the next free id.
	AddOrder(dateTime time.Time) models.Outcome
	// UpdateOrder replaces an existing order's date and time.
	UpdateOrder(orderID int64, dateTime time.Time) models.Outcome
	// AddOrderDetail creates a line item after validating its references.
	AddOrderDetail(orderID int64, pizzaID string, quantity int) models.Outcome
	// UpdateOrderDetail replaces all fields of an existing line item.
	UpdateOrderDetail(orderDetailsID, orderID int64, pizzaID string, quantity int) models.Outcome
	// DeleteOrderDetail removes a line item.
	DeleteOrderDetail(orderDetailsID int64) models.Outcome
}

type ordersService struct {
	db *gorm.DB
}

// NewOrdersService creates a new instance of OrdersService.
func NewOrdersService(db *gorm.DB) OrdersService {
	return &ordersService{db: db}
}

func (s *ordersService) GetOrders(query GetOrdersQuery) ([]models.Order, error) {
	// OrderID is unique, so a query carrying one is a single-record lookup
	// and every other filter is ignored.
	if query.OrderID != nil {
		var orders []models.Order
		if err := s.db.Where("order_id = ?", *query.OrderID).Find(&orders).Error; err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{"order_id": *query.OrderID, "count": len(orders)}).Debug("Retrieved orders by id")
		return orders, nil
	}

	query = sanitizeOrdersQuery(query)
	startDate, endDate := query.dateBounds()

	var orders []models.Order
	err := s.db.
		Where("date >= ? AND date <= ?", startDate, endDate).
		Where("time >= ? AND time <= ?", query.StartTime, query.EndTime).
		Offset((query.PN - 1) * query.PS).
		Limit(query.PS).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	log.WithField("count", len(orders)).Debug("Retrieved orders matching query")
	return orders, nil
}

func (s *ordersService) GetOrderAmount(query GetOrderAmountQuery) (int64, error) {
	query.TimeWindow = sanitizeTimeWindow(query.TimeWindow)
	startDate, endDate := query.dateBounds()

	var amount int64
	err := s.db.Model(&models.Order{}).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Where("time >= ? AND time <= ?", query.StartTime, query.EndTime).
		Count(&amount).Error
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func (s *ordersService) GetProfit(query GetProfitQuery) (float64, error) {
	query = sanitizeProfitQuery(query)
	startDate, endDate := query.dateBounds()

	profitQuery := s.db.Model(&models.OrderDetail{}).
		Joins("JOIN orders ON orders.order_id = order_details.order_id").
		Joins("JOIN pizzas ON pizzas.pizza_id = order_details.pizza_id").
		Where("orders.date >= ? AND orders.date <= ?", startDate, endDate).
		Where("orders.time >= ? AND orders.time <= ?", query.StartTime, query.EndTime)
	if len(query.PizzaIDs) > 0 {
		profitQuery = profitQuery.Where("order_details.pizza_id IN ?", query.PizzaIDs)
	}

	var totalProfit float64
	err := profitQuery.
		Select("COALESCE(SUM(pizzas.price * order_details.quantity), 0)").
		Scan(&totalProfit).Error
	if err != nil {
		return 0, err
	}
	return totalProfit, nil
}

func (s *ordersService) AddOrder(dateTime time.Time) models.Outcome {
	date := dayOf(dateTime)
	clock := dateTime.Format(clockLayout)

	// The next id is max+1 (1 when the table is empty). Reading the max and
	// inserting happen in one transaction so concurrent adds cannot both
	// observe the same max.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var latestOrderID int64
		if err := tx.Model(&models.Order{}).
			Select("COALESCE(MAX(order_id), 0)").
			Scan(&latestOrderID).Error; err != nil {
			return err
		}
		order := models.Order{
			OrderID: latestOrderID + 1,
			Date:    &date,
			Time:    &clock,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to add order")
		return models.Failure("Failed to add order.")
	}
	return models.Ok()
}

func (s *ordersService) UpdateOrder(orderID int64, dateTime time.Time) models.Outcome {
	var order models.Order
	if err := s.db.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("Order ID does not exist.")
		}
		log.WithError(err).Error("Failed to look up order")
		return models.Failure("Update operation failed.")
	}

	date := dayOf(dateTime)
	clock := dateTime.Format(clockLayout)
	result := s.db.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{"date": date, "time": clock})
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to update order")
		return models.Failure("Update operation failed.")
	}
	if result.RowsAffected == 0 {
		return models.Failure("Update operation failed.")
	}
	return models.Ok()
}

func (s *ordersService) AddOrderDetail(orderID int64, pizzaID string, quantity int) models.Outcome {
	if quantity <= 0 {
		return models.ValidationError("Quantity must be greater than 0.")
	}

	// Referential checks happen here rather than in the store so the caller
	// gets a descriptive rejection instead of a constraint error.
	var order models.Order
	if err := s.db.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ValidationError("Order ID does not exist.")
		}
		log.WithError(err).Error("Failed to look up order")
		return models.Failure("Failed to add order detail.")
	}
	var pizza models.Pizza
	if err := s.db.First(&pizza, "pizza_id = ?", pizzaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ValidationError("Pizza ID does not exist.")
		}
		log.WithError(err).Error("Failed to look up pizza")
		return models.Failure("Failed to add order detail.")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var latestDetailID int64
		if err := tx.Model(&models.OrderDetail{}).
			Select("COALESCE(MAX(order_details_id), 0)").
			Scan(&latestDetailID).Error; err != nil {
			return err
		}
		detail := models.OrderDetail{
			OrderDetailsID: latestDetailID + 1,
			OrderID:        orderID,
			PizzaID:        pizzaID,
			Quantity:       quantity,
		}
		return tx.Create(&detail).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to add order detail")
		return models.Failure("Failed to add order detail.")
	}
	return models.Ok()
}

func (s *ordersService) UpdateOrderDetail(orderDetailsID, orderID int64, pizzaID string, quantity int) models.Outcome {
	if quantity <= 0 {
		return models.ValidationError("Quantity must be greater than 0.")
	}

	var detail models.OrderDetail
	if err := s.db.First(&detail, "order_details_id = ?", orderDetailsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("Order detail does not exist.")
		}
		log.WithError(err).Error("Failed to look up order detail")
		return models.Failure("Failed to update order detail.")
	}

	result := s.db.Model(&models.OrderDetail{}).
		Where("order_details_id = ?", orderDetailsID).
		Updates(map[string]interface{}{
			"order_id": orderID,
			"pizza_id": pizzaID,
			"quantity": quantity,
		})
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to update order detail")
		return models.Failure("Failed to update order detail.")
	}
	if result.RowsAffected == 0 {
		return models.Failure("Failed to update order detail.")
	}
	return models.Ok()
}

func (s *ordersService) DeleteOrderDetail(orderDetailsID int64) models.Outcome {
	var detail models.OrderDetail
	if err := s.db.First(&detail, "order_details_id = ?", orderDetailsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("Order detail does not exist.")
		}
		log.WithError(err).Error("Failed to look up order detail")
		return models.Failure("Failed to delete order detail.")
	}

	result := s.db.Delete(&models.OrderDetail{}, "order_details_id = ?", orderDetailsID)
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to delete order detail")
		return models.Failure("Failed to delete order detail.")
	}
	if result.RowsAffected == 0 {
		return models.Failure("Failed to delete order detail.")
	}
	return models.Ok()
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
