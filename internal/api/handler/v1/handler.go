package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id in path")

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      plain
// @Success      200 {string} string "."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}
