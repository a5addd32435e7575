// Package respond writes the API's JSON bodies. Success payloads pass
// through as-is; errors go through Error so the body shape stays uniform.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a payload with an explicit status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Created writes a 201 response.
func Created(c *gin.Context, payload any) {
	JSON(c, http.StatusCreated, payload)
}
