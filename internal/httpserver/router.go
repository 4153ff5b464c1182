package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventmarket/internal/cart"
	"eventmarket/internal/checkout"
	"eventmarket/internal/domain"
	bookingsvc "eventmarket/internal/service/booking"
	customersvc "eventmarket/internal/service/customer"
)

// customerService is the slice of the customer service the router needs.
type customerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.Customer, error)
	AccessTTLSeconds() int
}

type vendorService interface {
	List(ctx context.Context, categoryID string) ([]domain.Vendor, error)
	Get(ctx context.Context, id string) (*domain.Vendor, error)
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type eventTypeService interface {
	List() []domain.EventType
}

type checkoutService interface {
	Complete(ctx context.Context, items []domain.CartLineItem, customer checkout.CustomerInfo) ([]domain.Order, error)
}

type orderService interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Order, error)
	Transition(ctx context.Context, vendorID, orderID string, next domain.OrderStatus) (*domain.Order, error)
}

type bookingService interface {
	Create(ctx context.Context, customerID string, in bookingsvc.CreateInput) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}

// Deps carries everything the router needs.
type Deps struct {
	CustomerSvc  customerService
	VendorSvc    vendorService
	CategorySvc  categoryService
	EventTypeSvc eventTypeService
	CartSessions *cart.Sessions
	CheckoutSvc  checkoutService
	OrderSvc     orderService
	BookingSvc   bookingService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", sessionHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, sessionHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/signup", signupHandler(deps.CustomerSvc))
	router.POST("/auth/login", loginHandler(deps.CustomerSvc))
	router.GET("/me", authRequired(deps.CustomerSvc), meHandler())

	router.GET("/vendors", listVendorsHandler(deps.VendorSvc))
	router.GET("/vendors/:id", getVendorHandler(deps.VendorSvc))
	router.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	router.GET("/event-types", listEventTypesHandler(deps.EventTypeSvc))

	cartGroup := router.Group("/cart", cartSession(deps.CartSessions))
	{
		cartGroup.GET("", getCartHandler())
		cartGroup.POST("/items", addCartItemHandler())
		cartGroup.PATCH("/items/:productId", setCartQuantityHandler())
		cartGroup.DELETE("/items/:productId", removeCartItemHandler())
		cartGroup.DELETE("", clearCartHandler())
	}

	router.POST("/checkout", authRequired(deps.CustomerSvc), cartSession(deps.CartSessions), checkoutHandler(deps.CheckoutSvc))

	router.GET("/orders", authRequired(deps.CustomerSvc), listCustomerOrdersHandler(deps.OrderSvc))
	router.GET("/vendor/orders", authRequired(deps.CustomerSvc), vendorOnly(), listVendorOrdersHandler(deps.OrderSvc))
	router.PATCH("/vendor/orders/:id/status", authRequired(deps.CustomerSvc), vendorOnly(), updateOrderStatusHandler(deps.OrderSvc))

	router.POST("/bookings", authRequired(deps.CustomerSvc), createBookingHandler(deps.BookingSvc))
	router.GET("/bookings", authRequired(deps.CustomerSvc), listBookingsHandler(deps.BookingSvc))

	return router, nil
}

const customerCtxKey = "eventmarket.customer"

// authRequired validates the bearer token and stores the resolved
// customer on the gin context.
func authRequired(customers customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		cust, err := customers.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}
		c.Set(customerCtxKey, cust)
		c.Next()
	}
}

// vendorOnly gates vendor dashboard routes. Requires authRequired first.
func vendorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		cust := currentCustomer(c)
		if cust == nil || cust.Role != domain.RoleVendor || cust.VendorID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "vendor account required"})
			return
		}
		c.Next()
	}
}

func currentCustomer(c *gin.Context) *domain.Customer {
	v, ok := c.Get(customerCtxKey)
	if !ok {
		return nil
	}
	cust, _ := v.(*domain.Customer)
	return cust
}
