package public

import (
	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

var feedbackErrorRules = []handlershared.MappedError{
	{Target: service.ErrFeedbackInvalid, Code: response.CodeBadRequest, Key: "error.feedback_invalid"},
	{Target: service.ErrFeedbackEmailInvalid, Code: response.CodeBadRequest, Key: "error.feedback_email_invalid"},
	{Target: service.ErrFeedbackRatingInvalid, Code: response.CodeBadRequest, Key: "error.feedback_rating_invalid"},
}

var menuErrorRules = []handlershared.MappedError{
	{Target: service.ErrSpecialMealNotAvailable, Code: response.CodeNotFound, Key: "error.special_meal_unavailable"},
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondCartError(c *gin.Context, err error, fallbackKey string) {
	handlershared.RespondCartMapped(c, err, handlershared.CartErrorRules, response.CodeInternal, fallbackKey)
}

func respondCartSummary(c *gin.Context, key string, summary *service.CartSummary, data interface{}) {
	response.CartSuccess(c, handlershared.Message(c, key), summary.Total, summary.Count, data)
}
