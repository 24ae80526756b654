package controllers

import (
	"errors"
	"io"

	"github.com/yeremiapane/wildwest-grill/utils"
)

// invalidBody membungkus error binding JSON menjadi ValidationError.
func invalidBody(err error) error {
	if errors.Is(err, io.EOF) {
		return utils.ValidationError("Request body is required")
	}
	return utils.ValidationError("Invalid request body: " + err.Error())
}
