package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmarket/internal/checkout"
	"eventmarket/internal/domain"
)

// checkoutHandler converts the session cart into persisted vendor orders
// and clears the cart on success. Validation failures leave both the
// cart and the order store untouched.
func checkoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust := currentCustomer(c)
		store := currentCart(c)

		orders, err := svc.Complete(c.Request.Context(), store.Snapshot(), checkout.CustomerInfo{
			ID:    cust.ID,
			Name:  cust.Name,
			Email: cust.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
			case errors.Is(err, domain.ErrInvalidCustomer):
				c.JSON(http.StatusBadRequest, gin.H{"message": "customer identity incomplete"})
			default:
				// Orders persisted before the failure stand; report
				// what went through so the client can reconcile.
				c.JSON(http.StatusInternalServerError, gin.H{
					"message":     "order persistence failed",
					"savedOrders": orders,
				})
			}
			return
		}

		store.Clear()
		c.JSON(http.StatusCreated, gin.H{"orders": orders})
	}
}
