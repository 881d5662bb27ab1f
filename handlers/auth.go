package handlers

import (
	"errors"
	"net/http"

	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/dulce-tentacion/pasteleria-backend/utils"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"nombre_usuario"`
	Password string `json:"contrasenia"`
}

// Login authenticates by username and issues a bearer token carrying the
// user id and type.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Username and password are required"})
	}

	user, err := h.Users.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		// Only a missing user means bad credentials; a storage failure
		// must not look like a rejected login.
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), string(user.Type))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"nombre_usuario": user.Username,
		"tipo_usuario":   user.Type,
		"token":          token,
	})
}
