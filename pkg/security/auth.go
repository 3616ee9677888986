package security

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/repository"
	"stockroom/pkg/models"
)

var jwtSecret []byte

// Configure sets the signing secret. Must be called once at startup before
// any token is issued or verified.
func Configure(secret string) {
	jwtSecret = []byte(secret)
}

func AuthenticateUser(username, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User

	query := repo.GoquDBWrapper.
		Select("id", "username", "fullname", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"username": username})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("unknown user %q", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}

func GenerateJWT(userID int, role string, username string) (string, error) {
	claims := jwt.MapClaims{
		"userID":   userID,
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// GetUserIDFromContext reads the user id the JWT middleware stored on the
// request context.
func GetUserIDFromContext(c *gin.Context) (int, error) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, fmt.Errorf("no authenticated user on request")
	}

	userID, ok := value.(int)
	if !ok {
		return 0, fmt.Errorf("userID has unexpected type %T", value)
	}

	return userID, nil
}

// GetRoleFromContext reads the role claim the JWT middleware stored on the
// request context.
func GetRoleFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("role")
	if !exists {
		return "", fmt.Errorf("no authenticated user on request")
	}

	role, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("role has unexpected type %T", value)
	}

	return role, nil
}
