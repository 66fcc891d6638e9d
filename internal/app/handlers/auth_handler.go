package handlers

import (
	"net/http"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     interfaces.AuthAPIInterface
	sessions interfaces.SessionResolverInterface
}

func NewAuthHandler(auth interfaces.AuthAPIInterface, sessions interfaces.SessionResolverInterface) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=8"`
	Password  string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondWithBackendError(c, err, "identifiants incorrects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": session.Token, "user": session.User})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	session, err := h.auth.Register(c.Request.Context(),
		body.FirstName, body.LastName, body.Email, body.Phone, body.Password)
	if err != nil {
		respondWithBackendError(c, err, "inscription impossible")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": session.Token, "user": session.User})
}

// Me returns the profile resolved by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": middleware.CurrentUser(c)})
}
