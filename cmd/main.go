package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-place-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-place-api/internal/config"
	"github.com/franciscosanchezn/pizza-place-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-place-api/internal/database"
	"github.com/franciscosanchezn/pizza-place-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db               *gorm.DB
	ordersService    services.OrdersService
	pizzasService    services.PizzasService
	ordersController controllers.OrdersController
	pizzasController controllers.PizzasController
	configuration    *config.Config
)

// @title Pizza Place API
// @version 1.0
// @description CRUD REST API for a pizza-ordering domain: orders, line items, catalog and aggregates
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	ordersService = services.NewOrdersService(db)
	pizzasService = services.NewPizzasService(db)
	ordersController = controllers.NewOrdersController(ordersService)
	pizzasController = controllers.NewPizzasController(pizzasService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds the catalog when the store is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.PizzaType{}, &models.Pizza{}, &models.Order{}, &models.OrderDetail{})
	checkPanicErr(err)

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.PizzaType{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the catalog with a few pizza types and sized items
func seedDatabase() {
	pizzaTypes := []models.PizzaType{
		{PizzaTypeID: "margherita", Name: "Margherita", Category: "Classic", Ingredients: "Tomato Sauce, Mozzarella, Basil"},
		{PizzaTypeID: "pepperoni", Name: "Pepperoni", Category: "Classic", Ingredients: "Tomato Sauce, Mozzarella, Pepperoni"},
		{PizzaTypeID: "veggie", Name: "Vegetarian", Category: "Veggie", Ingredients: "Tomato Sauce, Mozzarella, Bell Peppers, Olives"},
	}
	for _, pizzaType := range pizzaTypes {
		db.Create(&pizzaType)
	}

	pizzas := []models.Pizza{
		{PizzaID: "margherita_m", PizzaTypeID: "margherita", Size: "M", Price: 10.99},
		{PizzaID: "margherita_l", PizzaTypeID: "margherita", Size: "L", Price: 13.99},
		{PizzaID: "pepperoni_m", PizzaTypeID: "pepperoni", Size: "M", Price: 12.99},
		{PizzaID: "pepperoni_xl", PizzaTypeID: "pepperoni", Size: "XL", Price: 17.99},
		{PizzaID: "veggie_m", PizzaTypeID: "veggie", Size: "M", Price: 11.99},
	}
	for _, pizza := range pizzas {
		db.Create(&pizza)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.GET("", ordersController.GetOrders)
			orders.GET("/OrderAmount", ordersController.GetOrderAmount)
			orders.GET("/Profit", ordersController.GetProfit)
			orders.POST("/Order", ordersController.AddOrder)
			orders.PUT("/Order", ordersController.UpdateOrder)
			orders.POST("/OrderDetail", ordersController.AddOrderDetail)
			orders.PUT("/OrderDetail", ordersController.UpdateOrderDetail)
			orders.DELETE("/OrderDetail", ordersController.DeleteOrderDetail)
		}

		pizzas := v1.Group("/pizzas")
		{
			pizzas.GET("", pizzasController.GetPizzaInfo)
			pizzas.GET("/Price", pizzasController.GetPizzaPrice)
			pizzas.POST("/PizzaType", pizzasController.AddPizzaType)
			pizzas.PUT("/PizzaType", pizzasController.UpdatePizzaType)
			pizzas.POST("/PizzaItem", pizzasController.AddPizzaItem)
			pizzas.PUT("/PizzaItemPrice", pizzasController.UpdatePizzaItemPrice)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-place-api",
	})
}
