package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	usersvc "shopcart/internal/service/user"
)

func registerHandler(svc userAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		user, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, usersvc.ErrEmailTaken), errors.Is(err, usersvc.ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}
