package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzasController handles HTTP requests related to the pizza catalog
type PizzasController interface {
	// GetPizzaInfo retrieves one pizza or the whole catalog
	GetPizzaInfo(ctx *gin.Context)
	// GetPizzaPrice looks up the price for a type and size
	GetPizzaPrice(ctx *gin.Context)
	// AddPizzaType creates a new pizza type
	AddPizzaType(ctx *gin.Context)
	// UpdatePizzaType replaces a pizza type's descriptive fields
	UpdatePizzaType(ctx *gin.Context)
	// AddPizzaItem creates a new sized pizza item
	AddPizzaItem(ctx *gin.Context)
	// UpdatePizzaItemPrice replaces a sized item's price
	UpdatePizzaItemPrice(ctx *gin.Context)
}

type pizzasController struct {
	service services.PizzasService
}

// NewPizzasController creates a new instance of PizzasController
func NewPizzasController(service services.PizzasService) *pizzasController {
	return &pizzasController{service: service}
}

// GetPizzaInfo godoc
// @Summary Get pizzas
// @Description Get the pizza with the given id, or every pizza when no id is supplied
// @Tags pizzas
// @Produce json
// @Param id query string false "Pizza id"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/pizzas [get]
func (c *pizzasController) GetPizzaInfo(ctx *gin.Context) {
	pizzas, err := c.service.GetPizzaInfo(ctx.Query("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizzas"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"pizzas": pizzas})
}

// GetPizzaPrice godoc
// @Summary Get a pizza price
// @Description Look up the price of the pizza matching a type id and size; 0 when no match exists
// @Tags pizzas
// @Produce json
// @Param PizzaTypeId query string true "Pizza type id"
// @Param Size query string true "Size (S, M, L, XL, XXL)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/pizzas/Price [get]
func (c *pizzasController) GetPizzaPrice(ctx *gin.Context) {
	var params struct {
		PizzaTypeID string `form:"PizzaTypeId" binding:"required"`
		Size        string `form:"Size" binding:"required"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "PizzaTypeId and Size are required"})
		return
	}

	price, err := c.service.GetPizzaPrice(params.PizzaTypeID, params.Size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza price"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"price": price})
}

// AddPizzaType godoc
// @Summary Create a pizza type
// @Description Create a new pizza type; the id is lowercased on write
// @Tags pizzas
// @Produce json
// @Param PizzaTypeId query string true "Pizza type id"
// @Param Name query string false "Display name"
// @Param Category query string false "Category"
// @Param Ingredients query string false "Ingredient list"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/pizzas/PizzaType [post]
func (c *pizzasController) AddPizzaType(ctx *gin.Context) {
	var params struct {
		PizzaTypeID string `form:"PizzaTypeId" binding:"required"`
		Name        string `form:"Name"`
		Category    string `form:"Category"`
		Ingredients string `form:"Ingredients"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "PizzaTypeId is required"})
		return
	}

	outcome := c.service.AddPizzaType(params.PizzaTypeID, params.Name, params.Category, params.Ingredients)
	respondOutcome(ctx, outcome, http.StatusCreated)
}

// UpdatePizzaType godoc
// @Summary Update a pizza type
// @Description Replace the name, category and ingredients of an existing pizza type
// @Tags pizzas
// @Produce json
// @Param PizzaTypeId query string true "Pizza type id"
// @Param Name query string false "Display name"
// @Param Category query string false "Category"
// @Param Ingredients query string false "Ingredient list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/pizzas/PizzaType [put]
func (c *pizzasController) UpdatePizzaType(ctx *gin.Context) {
	var params struct {
		PizzaTypeID string `form:"PizzaTypeId" binding:"required"`
		Name        string `form:"Name"`
		Category    string `form:"Category"`
		Ingredients string `form:"Ingredients"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "PizzaTypeId is required"})
		return
	}

	outcome := c.service.UpdatePizzaType(params.PizzaTypeID, params.Name, params.Category, params.Ingredients)
	respondOutcome(ctx, outcome, http.StatusOK)
}

// AddPizzaItem godoc
// @Summary Create a sized pizza item
// @Description Create a sized, priced item under an existing pizza type; the item id is derived from type and size
// @Tags pizzas
// @Produce json
// @Param PizzaTypeId query string true "Pizza type id"
// @Param Size query string true "Size (S, M, L, XL, XXL)"
// @Param Price query number true "Price (must be greater than 0)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/pizzas/PizzaItem [post]
func (c *pizzasController) AddPizzaItem(ctx *gin.Context) {
	var params struct {
		PizzaTypeID string  `form:"PizzaTypeId" binding:"required"`
		Size        string  `form:"Size" binding:"required"`
		Price       float64 `form:"Price"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "PizzaTypeId and Size are required"})
		return
	}

	outcome := c.service.AddPizzaItem(params.PizzaTypeID, params.Size, params.Price)
	respondOutcome(ctx, outcome, http.StatusCreated)
}

// UpdatePizzaItemPrice godoc
// @Summary Update a pizza item price
// @Description Replace the price of an existing sized pizza item
// @Tags pizzas
// @Produce json
// @Param PizzaId query string true "Pizza id"
// @Param Price query number true "Price (must be greater than 0)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/pizzas/PizzaItemPrice [put]
func (c *pizzasController) UpdatePizzaItemPrice(ctx *gin.Context) {
	var params struct {
		PizzaID string  `form:"PizzaId" binding:"required"`
		Price   float64 `form:"Price"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "PizzaId is required"})
		return
	}

	outcome := c.service.UpdatePizzaItemPrice(params.PizzaID, params.Price)
	respondOutcome(ctx, outcome, http.StatusOK)
}
