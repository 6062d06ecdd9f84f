package routes

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
	"github.com/itschibits/sharebnb-api/utils"
)

// GetListings returns every listing with its photos nested in insertion
// order. The serialized payload is cached briefly in redis.
func (api *API) GetListings(ctx iris.Context) {
	reqCtx := ctx.Request().Context()

	if payload, ok := api.Cache.Get(reqCtx); ok {
		ctx.ContentType("application/json")
		ctx.Write(payload)
		return
	}

	var listings []models.Listing
	err := api.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&listings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	payload, err := json.Marshal(listings)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	api.Cache.Set(reqCtx, payload)
	ctx.ContentType("application/json")
	ctx.Write(payload)
}

// CreateListing creates a listing from multipart form data. The optional
// "photo" part is uploaded first; an upload failure aborts the request
// before anything is written.
func (api *API) CreateListing(ctx iris.Context) {
	title := strings.TrimSpace(ctx.FormValue("title"))
	description := ctx.FormValue("description")
	location := ctx.FormValue("location")
	username := strings.TrimSpace(ctx.FormValue("username"))
	rawPrice := ctx.FormValue("price")

	if title == "" || username == "" || rawPrice == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "title, price and username are required.", ctx)
		return
	}

	price, priceErr := utils.NormalizePrice(rawPrice)
	if priceErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", priceErr.Error(), ctx)
		return
	}

	var owner models.User
	if err := api.DB.Where("username = ?", username).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Listing owner does not exist.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	photoURL := ""
	file, header, fileErr := ctx.FormFile("photo")
	if fileErr == nil {
		defer file.Close()

		url, err := api.Uploader.Upload(ctx.Request().Context(), file, header.Size, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			api.Logger.WithError(err).Error("listing photo upload failed")
			utils.CreateUpstreamError("Photo upload failed.", ctx)
			return
		}
		photoURL = url
	}

	listing := models.Listing{
		Title:         title,
		Price:         price,
		Description:   description,
		Location:      location,
		OwnerUsername: owner.Username,
	}

	txErr := api.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}
		if photoURL != "" {
			photo := models.ListingPhoto{ListingID: listing.ID, ImageURL: photoURL}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if photoURL != "" {
			// The photo is already in the bucket with no row pointing at it.
			api.Logger.WithField("imageURL", photoURL).Warn("orphaned upload after failed listing create")
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	api.Cache.Invalidate(ctx.Request().Context())

	var created models.Listing
	err := api.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&created, listing.ID).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&created)
}
