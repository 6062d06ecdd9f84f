package routes

import (
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/itschibits/sharebnb-api/models"
	"github.com/itschibits/sharebnb-api/storage"
	"github.com/itschibits/sharebnb-api/utils"
)

// Signup creates a user from multipart form data, uploading the optional
// "file" part as the profile photo, and returns a fresh token.
func (api *API) Signup(ctx iris.Context) {
	username := strings.TrimSpace(ctx.FormValue("username"))
	email := strings.ToLower(strings.TrimSpace(ctx.FormValue("email")))
	password := ctx.FormValue("password")
	bio := ctx.FormValue("bio")
	location := ctx.FormValue("location")

	if username == "" || email == "" || password == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "username, email and password are required.", ctx)
		return
	}

	imageURL := ""
	file, header, fileErr := ctx.FormFile("file")
	if fileErr == nil {
		defer file.Close()

		url, err := api.Uploader.Upload(ctx.Request().Context(), file, header.Size, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			api.Logger.WithError(err).Error("profile photo upload failed")
			utils.CreateUpstreamError("Photo upload failed.", ctx)
			return
		}
		imageURL = url
	}

	hashedPassword, hashErr := utils.HashPassword(password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Bio:      bio,
		Location: location,
		ImageURL: imageURL,
	}

	if err := api.DB.Create(&newUser).Error; err != nil {
		if imageURL != "" {
			// The photo is already in the bucket with no row pointing at it.
			api.Logger.WithField("imageURL", imageURL).Warn("orphaned upload after failed signup")
		}
		if storage.IsConflict(err) {
			utils.CreateConflictError("Username or email already taken.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	token, tokenErr := utils.CreateToken(api.Secret, newUser.Username)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"token": token})
}

// Login verifies form credentials and returns a token. Unknown username
// and wrong password produce the same response.
func (api *API) Login(ctx iris.Context) {
	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	if username == "" || password == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "username and password are required.", ctx)
		return
	}

	user, ok := utils.Authenticate(api.DB, username, password)
	if !ok {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid username or password.", ctx)
		return
	}

	token, tokenErr := utils.CreateToken(api.Secret, user.Username)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"token": token})
}
