package security

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockroom/internal/repository"
)

type LoginHandler struct {
	repository *repository.Repository
}

func NewLoginHandler(r *repository.Repository) *LoginHandler {
	return &LoginHandler{repository: r}
}

func RegisterRoutes(router *gin.Engine, handler *LoginHandler) {
	router.POST("/api/login", handler.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(req.Username, req.Password, h.repository)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := GenerateJWT(user.ID, user.Role, user.Username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
