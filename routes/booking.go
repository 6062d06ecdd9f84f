package routes

import (
	"context"
	"errors"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
	"github.com/itschibits/sharebnb-api/services"
	"github.com/itschibits/sharebnb-api/utils"
)

func (api *API) CreateBooking(ctx iris.Context) {
	var input CreateBookingInput

	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	if !input.StartDate.Before(input.EndDate) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "startDate must be before endDate.", ctx)
		return
	}

	var listing models.Listing
	if err := api.DB.First(&listing, input.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Listing does not exist.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	totalPrice, priceErr := utils.TotalPrice(listing.Price, input.StartDate, input.EndDate)
	if priceErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	booking := models.Booking{
		RenterUsername: claims.Username,
		ListingID:      listing.ID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		TotalPrice:     totalPrice,
	}

	if err := api.DB.Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if api.Events != nil {
		event := services.BookingCreatedEvent{
			BookingID:      booking.ID,
			ListingID:      booking.ListingID,
			RenterUsername: booking.RenterUsername,
			StartDate:      booking.StartDate,
			EndDate:        booking.EndDate,
			TotalPrice:     booking.TotalPrice,
		}
		go func() {
			_ = api.Events.BookingCreated(context.Background(), event)
		}()
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&booking)
}

// GetBookings returns the caller's bookings, newest first.
func (api *API) GetBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var bookings []models.Booking
	err := api.DB.
		Where("renter_username = ?", claims.Username).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	ctx.JSON(bookings)
}

type CreateBookingInput struct {
	ListingID uint      `json:"listingID" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}
