package routes

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
	"github.com/itschibits/sharebnb-api/utils"
)

func (api *API) CreateMessage(ctx iris.Context) {
	var input CreateMessageInput

	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	if input.ToUsername == claims.Username {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Cannot send a message to yourself.", ctx)
		return
	}

	var recipient models.User
	if err := api.DB.Where("username = ?", input.ToUsername).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Recipient does not exist.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	message := models.Message{
		Text:         input.Text,
		FromUsername: claims.Username,
		ToUsername:   recipient.Username,
	}

	if err := api.DB.Create(&message).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&message)
}

// GetMessages returns every message the caller sent or received, newest
// first.
func (api *API) GetMessages(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var messages []models.Message
	err := api.DB.
		Where("from_username = ? OR to_username = ?", claims.Username, claims.Username).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}

	ctx.JSON(messages)
}

type CreateMessageInput struct {
	ToUsername string `json:"toUsername" validate:"required,max=256"`
	Text       string `json:"text" validate:"required,max=5000"`
}
