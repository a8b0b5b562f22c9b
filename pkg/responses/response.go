package responses

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Envelope is the body of every successful response.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Status  string      `json:"status"` // "error" for client errors, "fail" for server failures
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ErrorResponse aborts the request with a standardized error body.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail"
	}
	c.AbortWithStatusJSON(statusCode, ErrorEnvelope{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// formatValidationErrors converts validator.ValidationErrors into a map keyed by field.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formattedErrors := make(map[string]string)
	for _, err := range errs {
		fieldKey := strings.ToLower(err.Field())
		var errMsg string
		switch err.Tag() {
		case "required":
			errMsg = fmt.Sprintf("The %s field is required.", err.Field())
		case "min", "gte":
			errMsg = fmt.Sprintf("The %s field must be at least %s.", err.Field(), err.Param())
		case "max", "lte":
			errMsg = fmt.Sprintf("The %s field must not exceed %s.", err.Field(), err.Param())
		case "oneof":
			errMsg = fmt.Sprintf("The %s field must be one of the following: %s.", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
		case "nefield":
			errMsg = fmt.Sprintf("The %s field must differ from %s.", err.Field(), err.Param())
		case "playtype":
			errMsg = fmt.Sprintf("The %s field must be a known play type.", err.Field())
		case "eligibility":
			errMsg = fmt.Sprintf("The %s field must be official or friendly.", err.Field())
		case "matchstate":
			errMsg = fmt.Sprintf("The %s field must be a known match state.", err.Field())
		default:
			errMsg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", err.Field(), err.Tag())
		}
		formattedErrors[fieldKey] = errMsg
	}
	return formattedErrors
}

// ValidationErrorResponse reports binding failures from c.ShouldBindJSON and friends.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorEnvelope{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse wraps responseData in the success envelope.
// A gin.H carrying a string "message" key has it lifted to the top level.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := Envelope{Status: "success"}

	if gh, ok := responseData.(gin.H); ok {
		if msg, isStr := gh["message"].(string); isStr {
			payload.Message = msg
			rest := make(gin.H, len(gh))
			for k, v := range gh {
				if k != "message" {
					rest[k] = v
				}
			}
			if len(rest) > 0 {
				payload.Data = rest
			}
		} else {
			payload.Data = responseData
		}
	} else if responseData != nil {
		payload.Data = responseData
	}

	c.JSON(statusCode, payload)
}
