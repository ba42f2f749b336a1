package services

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzasService provides operations over the pizza catalog: types, sized
// items, and price lookup.
type PizzasService interface {
	// GetPizzaInfo retrieves the pizza with the given id, or every pizza when
	// id is empty. The parent type is attached to each result.
	GetPizzaInfo(id string) ([]models.Pizza, error)
	// GetPizzaPrice looks up the price of the pizza matching type and size.
	// A missing pizza yields price 0, not an error.
	GetPizzaPrice(pizzaTypeID, size string) (float64, error)
	// AddPizzaType inserts a new type record.
	AddPizzaType(pizzaTypeID, name, category, ingredients string) models.Outcome
	// UpdatePizzaType replaces the descriptive fields of an existing type.
	UpdatePizzaType(pizzaTypeID, name, category, ingredients string) models.Outcome
	// AddPizzaItem inserts a sized item under an existing type, deriving its id.
	AddPizzaItem(pizzaTypeID, size string, price float64) models.Outcome
	// UpdatePizzaItemPrice replaces the price of an existing sized item.
	UpdatePizzaItemPrice(pizzaID string, price float64) models.Outcome
}

type pizzasService struct {
	db *gorm.DB
}

// NewPizzasService creates a new instance of PizzasService.
func NewPizzasService(db *gorm.DB) PizzasService {
	return &pizzasService{db: db}
}

func (s *pizzasService) GetPizzaInfo(id string) ([]models.Pizza, error) {
	pizzaQuery := s.db.Preload("PizzaType")
	if id != "" {
		pizzaQuery = pizzaQuery.Where("pizza_id = ?", id)
	}
	var pizzas []models.Pizza
	if err := pizzaQuery.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzasService) GetPizzaPrice(pizzaTypeID, size string) (float64, error) {
	var pizza models.Pizza
	err := s.db.Where("pizza_type_id = ? AND size = ?", pizzaTypeID, size).First(&pizza).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pizza.Price, nil
}

func (s *pizzasService) AddPizzaType(pizzaTypeID, name, category, ingredients string) models.Outcome {
	pizzaType := models.PizzaType{
		PizzaTypeID: strings.ToLower(pizzaTypeID),
		Name:        name,
		Category:    category,
		Ingredients: ingredients,
	}
	if err := s.db.Create(&pizzaType).Error; err != nil {
		log.WithError(err).Error("Failed to add pizza type")
		return models.Failure("Failed to add pizza type.")
	}
	return models.Ok()
}

func (s *pizzasService) UpdatePizzaType(pizzaTypeID, name, category, ingredients string) models.Outcome {
	var pizzaType models.PizzaType
	if err := s.db.First(&pizzaType, "pizza_type_id = ?", pizzaTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("PizzaTypeId does not exist in Database")
		}
		log.WithError(err).Error("Failed to look up pizza type")
		return models.Failure("PizzaTypeId update failed")
	}

	result := s.db.Model(&models.PizzaType{}).
		Where("pizza_type_id = ?", pizzaTypeID).
		Updates(map[string]interface{}{
			"name":        name,
			"category":    category,
			"ingredients": ingredients,
		})
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to update pizza type")
		return models.Failure("PizzaTypeId update failed")
	}
	if result.RowsAffected == 0 {
		return models.Failure("PizzaTypeId update failed")
	}
	return models.OkMessage("PizzaTypeId updated successfully")
}

func (s *pizzasService) AddPizzaItem(pizzaTypeID, size string, price float64) models.Outcome {
	size = strings.ToUpper(size)
	pizzaTypeID = strings.ToLower(pizzaTypeID)

	if !models.IsValidPizzaSize(size) {
		return models.ValidationError("Invalid pizza size. Valid sizes are S, M, L, XL, XXL.")
	}
	if price <= 0 {
		return models.ValidationError("Price must be greater than 0.")
	}

	var pizzaType models.PizzaType
	if err := s.db.First(&pizzaType, "pizza_type_id = ?", pizzaTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ValidationError("Pizza Type ID must exist. Create one first.")
		}
		log.WithError(err).Error("Failed to look up pizza type")
		return models.Failure("Failed to add pizza item.")
	}

	pizza := models.Pizza{
		PizzaID:     models.PizzaItemID(pizzaTypeID, size),
		PizzaTypeID: pizzaTypeID,
		Size:        size,
		Price:       price,
	}
	if err := s.db.Create(&pizza).Error; err != nil {
		log.WithError(err).Error("Failed to add pizza item")
		return models.Failure("Failed to add pizza item.")
	}
	return models.Ok()
}

func (s *pizzasService) UpdatePizzaItemPrice(pizzaID string, price float64) models.Outcome {
	if price <= 0 {
		return models.ValidationError("Price must be greater than 0.")
	}

	var pizza models.Pizza
	if err := s.db.First(&pizza, "pizza_id = ?", pizzaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("Pizza ID does not exist.")
		}
		log.WithError(err).Error("Failed to look up pizza")
		return models.Failure("Failed to update pizza price.")
	}

	result := s.db.Model(&models.Pizza{}).
		Where("pizza_id = ?", pizzaID).
		Update("price", price)
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to update pizza price")
		return models.Failure("Failed to update pizza price.")
	}
	if result.RowsAffected == 0 {
		return models.Failure("Failed to update pizza price.")
	}
	return models.Ok()
}
