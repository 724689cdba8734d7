// README: Demo admin login (credential check only, no session).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexaride/internal/modules/auth"
)

// Authenticator checks a username/password pair.
type Authenticator interface {
	Login(username, password string) (auth.User, error)
}

type AuthHandler struct {
	auth   Authenticator
	logger *zap.Logger
}

func NewAuthHandler(a Authenticator, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: a, logger: logger}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"success": false, "message": "Richiesta non valida"})
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(c, http.StatusBadRequest, gin.H{"success": false, "message": "Inserisci username e password"})
		return
	}

	user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) && !errors.Is(err, auth.ErrNoAccount) {
			h.logger.Error("login failed", zap.Error(err))
		}
		writeJSON(c, http.StatusUnauthorized, gin.H{"success": false, "message": "Credenziali non valide"})
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Login effettuato con successo",
		"user":    gin.H{"username": user.Username, "role": user.Role},
	})
}
