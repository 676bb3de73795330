package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (that *Handlers) Ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}
