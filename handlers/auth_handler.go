package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/muskiz/beach-handball/middleware"
	"github.com/muskiz/beach-handball/services"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   []byte
}

func NewAuthHandler(authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Login godoc
// @Summary Acceso de organizador
// @Tags auth
// @Accept json
// @Produce json
// @Param input body services.LoginInput true "Contraseña"
// @Success 200 {object} map[string]interface{} "token, expires_at"
// @Failure 401 {object} map[string]string "Contraseña incorrecta"
// @Failure 429 {object} map[string]string "Demasiados intentos"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput

	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.Login(r.Context(), input.Password); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		middleware.ClaimRole: middleware.RoleAdmin,
		"exp":                expiresAt.Unix(),
		"iat":                now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	respond(w, r, http.StatusOK, jsonResponse{
		"token":      tokenString,
		"expires_at": expiresAt.UTC(),
	})
}
