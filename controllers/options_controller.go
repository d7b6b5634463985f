package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lzmu/lzmubackend/models"
)

// GetQuoteOptions lists the service and budget labels the quote form offers.
func GetQuoteOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.DefaultQuoteOptions())
	}
}

func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	}
}
