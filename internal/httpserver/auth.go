package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmarket/internal/domain"
	customersvc "eventmarket/internal/service/customer"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Customer  *domain.Customer `json:"customer"`
	Token     string           `json:"token"`
	ExpiresIn int              `json:"expiresIn"`
}

func signupHandler(customers customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		cust, err := customers.Signup(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"message": "email already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": cust})
	}
}

func loginHandler(customers customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password required"})
			return
		}
		cust, token, err := customers.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, customersvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
			return
		}
		c.JSON(http.StatusOK, loginResponse{
			Customer:  cust,
			Token:     token,
			ExpiresIn: customers.AccessTTLSeconds(),
		})
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"customer": currentCustomer(c)})
	}
}
