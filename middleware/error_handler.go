package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"ExerciseTracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorHandlerMiddleware turns the last error a handler attached with
// c.Error into a plain-text response. Handlers never render failures
// themselves.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		if c.Writer.Written() {
			log.Printf("Error after response was written for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			return
		}

		// store-level document validation reports its first violation
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, fieldMessage(validationErrs[0]))
			return
		}

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			statusCode := customErr.StatusCode
			if statusCode == 0 {
				statusCode = http.StatusInternalServerError
			}
			utils.ErrorResponse(c, statusCode, customErr.Message)
			return
		}

		log.Printf("Unhandled error for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	case "gte":
		return fmt.Sprintf("Path `%s` (%v) is less than minimum allowed value (%s).", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("Path `%s` is invalid.", fe.Field())
	}
}
