package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/agendafacil/backend/controllers"
	"github.com/agendafacil/backend/cron"
	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/redis"
	"github.com/agendafacil/backend/routes"
	"github.com/agendafacil/backend/scheduler"
)

func main() {
	app := fiber.New()
	db.Init()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
	}
	redis.InitRedis()

	engine := scheduler.New(db.DB, scheduler.AdvisoryLock{})
	controllers.Init(engine)
	cron.StartCronJobs(engine)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("agendafacil api")
	})
	routes.SetupCompanyRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupWorkingHourRoutes(app)
	routes.SetupAppointmentRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
