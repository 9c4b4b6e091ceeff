package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errors.New("invalid id parameter")

// ParseIDParam reads a numeric path parameter. A non-numeric value is the
// caller's error (400), distinct from a well-formed id that resolves to
// nothing (404).
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(v), nil
}
