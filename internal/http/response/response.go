package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
)

const CodeInternal = "INTERNAL_ERROR"

// ErrorBody is the error shape every endpoint returns.
type ErrorBody struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details []apierr.Detail `json:"details,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error, details ...apierr.Detail) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorBody{
		Error:   code,
		Message: msg,
		Details: details,
	})
}

// RespondAPIError maps *apierr.Error values to their status; anything else is
// a 500 with a generic message.
func RespondAPIError(c *gin.Context, err error) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		RespondError(c, status, ae.Code, ae.Err, ae.Details...)
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{
		Error:   CodeInternal,
		Message: "internal server error",
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
