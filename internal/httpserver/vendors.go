package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmarket/internal/domain"
)

func listVendorsHandler(vendors vendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := vendors.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list vendors"})
			return
		}
		if list == nil {
			list = []domain.Vendor{}
		}
		c.JSON(http.StatusOK, gin.H{"vendors": list})
	}
}

func getVendorHandler(vendors vendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := vendors.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "vendor not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load vendor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendor": v})
	}
}

func listCategoriesHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list categories"})
			return
		}
		if list == nil {
			list = []domain.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": list})
	}
}

func listEventTypesHandler(eventTypes eventTypeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"eventTypes": eventTypes.List()})
	}
}
