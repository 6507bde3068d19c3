package router

import (
	"resort_manager/handler"
	"resort_manager/middleware"
	"resort_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	// Cottage and amenity reads are public, writes are admin only.
	amenity := v1.Group("/amenity", logger.New())
	amenity.Get("/", middleware.OptionalJWT(), handler.GetAmenity)
	amenity.Get("/:amenityId", middleware.OptionalJWT(), validate.GetById("amenityId"), handler.GetAmenityById)
	amenity.Post("/", middleware.Protected(), validate.CreateAmenity(), handler.CreateAmenity)
	amenity.Put("/:amenityId", middleware.Protected(), validate.EditAmenity("amenityId"), handler.EditAmenity)
	amenity.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteAmenity)

	cottage := v1.Group("/cottage", logger.New())
	cottage.Get("/", middleware.OptionalJWT(), handler.GetCottage)
	cottage.Get("/slug/:slug", middleware.OptionalJWT(), handler.GetCottageBySlug)
	cottage.Get("/:cottageId", middleware.OptionalJWT(), validate.GetById("cottageId"), handler.GetCottageById)
	cottage.Get("/:cottageId/availability", middleware.OptionalJWT(), validate.GetById("cottageId"), handler.GetCottageAvailability)
	cottage.Post("/", middleware.Protected(), validate.CreateCottage(), handler.CreateCottage)
	cottage.Put("/:cottageId", middleware.Protected(), validate.EditCottage("cottageId"), handler.EditCottage)
	cottage.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCottage)

	// Booking reads are public, writes need an authenticated owner.
	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.OptionalJWT(), handler.GetBooking)
	booking.Post("/check-availability", middleware.OptionalJWT(), validate.CheckAvailability(), handler.CheckAvailability)
	booking.Get("/:bookingId", middleware.OptionalJWT(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:bookingId", middleware.Protected(), validate.EditBooking("bookingId"), handler.EditBooking)
	booking.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteBooking)

	report := v1.Group("/report", logger.New())
	report.Get("/financial", middleware.Protected(), handler.GetFinancialReport)
}
