package controller

import (
	"strconv"

	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// learnerIDParam parses the :id path segment. Writes a 400 and returns
// false for anything that is not an unsigned integer.
func learnerIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid learner id")
		return 0, false
	}
	return uint(id), true
}
