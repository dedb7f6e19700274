package controllers

import (
	"errors"
	"strconv"

	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps repository/service failures onto the response envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
