package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Domenick1991/skybooking/internal/validate"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validate.RegisterTagName(v)
	}
}
