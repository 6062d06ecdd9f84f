package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Every failure body carries an "error" field with a human-readable
// detail; handlers never return 2xx for a business-logic failure.

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": detail, "title": title})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Server Error", "Something went wrong, please try again later.", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

func CreateConflictError(detail string, ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict Error", detail, ctx)
}

// CreateUpstreamError reports a failed object-storage call. Uploads are
// never silently replaced with a placeholder value.
func CreateUpstreamError(detail string, ctx iris.Context) {
	CreateError(iris.StatusBadGateway, "Upstream Error", detail, ctx)
}

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

// HandleValidationErrors shapes go-playground/validator failures from
// ctx.ReadJSON into a 400 body; anything else (malformed JSON) gets a
// generic 400.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":  "One or more fields failed validation.",
			"title":  "Validation Error",
			"errors": wrapValidationErrors(errs),
		})
		return
	}

	CreateError(iris.StatusBadRequest, "Validation Error", "Invalid request payload.", ctx)
}

func wrapValidationErrors(errs validator.ValidationErrors) []validationError {
	validationErrors := make([]validationError, 0, len(errs))
	for _, validationErr := range errs {
		validationErrors = append(validationErrors, validationError{
			ActualTag: validationErr.ActualTag(),
			Namespace: validationErr.Namespace(),
			Kind:      validationErr.Kind().String(),
			Type:      validationErr.Type().String(),
			Value:     fmt.Sprintf("%v", validationErr.Value()),
			Param:     validationErr.Param(),
		})
	}
	return validationErrors
}
