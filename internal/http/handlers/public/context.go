package public

import (
	handlershared "github.com/animall-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getSessionID(c *gin.Context) (string, bool) {
	return handlershared.GetSessionID(c)
}
