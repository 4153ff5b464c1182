package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmarket/internal/domain"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listCustomerOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust := currentCustomer(c)
		list, err := orders.ListByCustomer(c.Request.Context(), cust.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list orders"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func listVendorOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust := currentCustomer(c)
		list, err := orders.ListByVendor(c.Request.Context(), cust.VendorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list vendor orders"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func updateOrderStatusHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in updateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
			return
		}
		status, ok := domain.ParseOrderStatus(in.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown status"})
			return
		}

		cust := currentCustomer(c)
		o, err := orders.Transition(c.Request.Context(), cust.VendorID, c.Param("id"), status)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
			case errors.Is(err, domain.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"message": "status transition not allowed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": o})
	}
}
