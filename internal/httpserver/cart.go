package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"eventmarket/internal/cart"
	"eventmarket/internal/domain"
	"eventmarket/internal/pricing"
)

// sessionHeader carries the opaque cart session id. Clients without one
// get a fresh id back on the first cart request.
const sessionHeader = "X-Session-Id"

const cartCtxKey = "eventmarket.cart"

// cartSession resolves the session's cart store, minting a session id
// when the client has none yet.
func cartSession(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(sessionHeader))
		if id == "" {
			id = sessions.NewSessionID()
		}
		c.Header(sessionHeader, id)
		c.Set(cartCtxKey, sessions.Get(id))
		c.Next()
	}
}

func currentCart(c *gin.Context) *cart.Store {
	v, ok := c.Get(cartCtxKey)
	if !ok {
		return nil
	}
	store, _ := v.(*cart.Store)
	return store
}

type addItemRequest struct {
	ProductID  string          `json:"productId" binding:"required"`
	VendorID   string          `json:"vendorId" binding:"required"`
	VendorName string          `json:"vendorName"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items     []domain.CartLineItem `json:"items"`
	Breakdown priceBreakdownView    `json:"breakdown"`
}

// priceBreakdownView renders amounts rounded to two decimals for display
// while the underlying computation keeps full precision.
type priceBreakdownView struct {
	Subtotal string `json:"subtotal"`
	TaxRate  string `json:"taxRate"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func toBreakdownView(b domain.PriceBreakdown) priceBreakdownView {
	return priceBreakdownView{
		Subtotal: pricing.FormatAmount(b.Subtotal),
		TaxRate:  b.TaxRate.String(),
		Tax:      pricing.FormatAmount(b.Tax),
		Shipping: pricing.FormatAmount(b.Shipping),
		Total:    pricing.FormatAmount(b.Total),
	}
}

func cartView(store *cart.Store) cartResponse {
	items := store.Snapshot()
	if items == nil {
		items = []domain.CartLineItem{}
	}
	return cartResponse{
		Items:     items,
		Breakdown: toBreakdownView(pricing.Compute(items)),
	}
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(currentCart(c)))
	}
}

func addCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId and vendorId required"})
			return
		}
		if in.UnitPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unitPrice must not be negative"})
			return
		}
		store := currentCart(c)
		store.Add(in.ProductID, in.VendorID, in.VendorName, in.UnitPrice)
		c.JSON(http.StatusOK, cartView(store))
	}
}

func setCartQuantityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in setQuantityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity required"})
			return
		}
		store := currentCart(c)
		store.SetQuantity(c.Param("productId"), in.Quantity)
		c.JSON(http.StatusOK, cartView(store))
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentCart(c)
		store.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, cartView(store))
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentCart(c)
		store.Clear()
		c.JSON(http.StatusOK, cartView(store))
	}
}
