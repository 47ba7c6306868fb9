package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopcart/internal/domain"
	cartsvc "shopcart/internal/service/cart"
)

type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total string            `json:"total"`
}

func cartJSON(svc cartAPI, session string) cartResponse {
	lines := svc.ProductsInCart(session)
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		Lines: lines,
		Total: svc.Total(session).StringFixed(2),
	}
}

func viewCartHandler(svc cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartJSON(svc, sessionID(c)))
	}
}

func addToCartHandler(svc cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionID(c)
		if _, err := svc.AddProduct(c.Request.Context(), session, c.Param("productID")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartJSON(svc, session))
	}
}

func removeFromCartHandler(svc cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionID(c)
		svc.RemoveProduct(session, c.Param("productID"))
		c.JSON(http.StatusOK, cartJSON(svc, session))
	}
}

type checkoutRequest struct {
	Username string `json:"username" binding:"required"`
}

func checkoutHandler(svc cartAPI, users userAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
			return
		}
		user, err := users.GetByUsername(c.Request.Context(), req.Username)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		order, err := svc.Checkout(c.Request.Context(), sessionID(c), *user)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func writeCheckoutError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "insufficient stock",
			"productId": stockErr.ProductID,
			"product":   stockErr.Name,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "checkout conflicted with a concurrent order, retry", "retryable": true})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusConflict, gin.H{"error": "a product in the cart is no longer available"})
	case errors.Is(err, cartsvc.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
