package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmarket/internal/domain"
	bookingsvc "eventmarket/internal/service/booking"
)

func createBookingHandler(bookings bookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in bookingsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		cust := currentCustomer(c)
		b, err := bookings.Create(c.Request.Context(), cust.ID, in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking": b})
	}
}

func listBookingsHandler(bookings bookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust := currentCustomer(c)
		list, err := bookings.ListByCustomer(c.Request.Context(), cust.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list bookings"})
			return
		}
		if list == nil {
			list = []domain.Booking{}
		}
		c.JSON(http.StatusOK, gin.H{"bookings": list})
	}
}
