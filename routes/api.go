package routes

import (
	"context"
	"io"

	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/services"
	"github.com/itschibits/sharebnb-api/storage"
	"github.com/itschibits/sharebnb-api/utils"
)

// Uploader streams a file into object storage and returns its public
// URL. Implemented by storage.ObjectStorage; tests substitute a fake.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error)
}

// API holds every collaborator the handlers need. Handlers receive their
// dependencies through it instead of reaching for package globals, so
// tests can swap in an in-memory database and fake uploader.
type API struct {
	DB       *gorm.DB
	Uploader Uploader
	Cache    *storage.ListingCache
	Events   services.EventPublisher
	Secret   string
	Logger   *logrus.Logger
}

// RegisterRoutes mounts the public signup/login/listing routes and the
// token-guarded booking and message routes.
func (api *API) RegisterRoutes(app *iris.Application) {
	app.Post("/signup", api.Signup)
	app.Post("/login", api.Login)
	app.Get("/listings", api.GetListings)
	app.Post("/listings/new", api.CreateListing)

	verifier := utils.TokenVerifier(api.Secret)
	verifyToken := verifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	bookings := app.Party("/bookings", verifyToken)
	{
		bookings.Post("/", api.CreateBooking)
		bookings.Get("/", api.GetBookings)
	}

	messages := app.Party("/messages", verifyToken)
	{
		messages.Post("/", api.CreateMessage)
		messages.Get("/", api.GetMessages)
	}
}
