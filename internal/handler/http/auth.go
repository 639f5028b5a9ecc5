package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/workpulse/ems-backend/internal/domain/auth"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	authservice "github.com/workpulse/ems-backend/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authservice.Service
}

func NewAuthHandler(authService *authservice.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	loginReq.ClientIP = clientIP(r)

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err, "username", loginReq.Username, "ip", loginReq.ClientIP)
		response.HandleError(w, err)
		return
	}

	slog.Info("Login successful", "username", loginReq.Username)
	response.Success(w, result)
}

// clientIP returns the peer address with the port stripped. RealIP middleware
// has already rewritten RemoteAddr from forwarding headers where present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
