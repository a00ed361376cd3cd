package routes

import (
	"Pantry-Share-Backend/internal/api/handlers"
	"Pantry-Share-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ProductHandler   handlers.ProductHandler
	ContainerHandler handlers.ContainerHandler
	UserHandler      handlers.UserHandler
	MediaHandler     handlers.MediaHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.Containers()
	c.Users()
	c.Images()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	// product routes
	{
		products.Put("", c.ProductHandler.UpdateProduct)
		products.Get("/outdated", c.ProductHandler.GetOutdatedProducts)
		products.Post("/outdated/notify", c.ProductHandler.NotifyOutdatedProducts)
		products.Post("/:userUuid", c.ProductHandler.AddProduct)
		products.Post("/:userUuid/all", c.ProductHandler.GetAllProducts)
		products.Post("/:userUuid/synchronize", c.ProductHandler.SynchronizeProducts)
		products.Get("/:uuid", c.ProductHandler.GetProduct)
		products.Delete("/:userUuid/:uuid", c.ProductHandler.DeleteProduct)
	}

	c.App.Get("/api/v1/product-cards/:barcode", c.ProductHandler.GetProductCard)
}

func (c *Config) Containers() {
	containers := c.App.Group("/api/v1/containers")
	{
		containers.Get("/:uuid", c.ContainerHandler.GetContainer)
		containers.Get("/:uuid/shared-info", c.ContainerHandler.GetSharedInfo)
		containers.Post("/:requesterUuid/share/:targetUuid", c.ContainerHandler.ShareContainer)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Get("/:uuid", c.UserHandler.GetUser)
	}
}

func (c *Config) Images() {
	images := c.App.Group("/api/v1/images")
	{
		images.Post("", c.MediaHandler.SaveImage)
		images.Get("/:uuid", c.MediaHandler.GetImage)
		images.Delete("/:uuid", c.MediaHandler.DeleteImage)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
