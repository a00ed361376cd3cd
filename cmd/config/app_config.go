package config

import (
	"Pantry-Share-Backend/internal/api/handlers"
	"Pantry-Share-Backend/internal/api/routes"
	"Pantry-Share-Backend/internal/middleware"
	"Pantry-Share-Backend/internal/utils"
	"Pantry-Share-Backend/internal/utils/storage"
	"Pantry-Share-Backend/pkg/card"
	"Pantry-Share-Backend/pkg/container"
	"Pantry-Share-Backend/pkg/media"
	"Pantry-Share-Backend/pkg/product"
	"Pantry-Share-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	cardRepository := card.NewCardRepository(db)
	containerRepository := container.NewContainerRepository(db)
	productRepository := product.NewProductRepository(db)
	mediaRepository := media.NewMediaRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	cardService := card.NewCardService(cardRepository)
	containerService := container.NewContainerService(containerRepository, userRepository)
	productService := product.NewProductService(
		productRepository,
		cardService,
		containerRepository,
		containerService,
	)
	mediaService := media.NewMediaService(mediaRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, cardService, validator)
	containerHandler := handlers.NewContainerHandler(containerService)
	mediaHandler := handlers.NewMediaHandler(mediaService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ProductHandler:   productHandler,
		ContainerHandler: containerHandler,
		UserHandler:      userHandler,
		MediaHandler:     mediaHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
