package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/http/middleware"
	"github.com/capdigital/capsite-api/internal/infra/session"
	"github.com/capdigital/capsite-api/internal/usecase"
)

type AuthHandler struct {
	LoginUseCase *usecase.LoginUseCase
	MaxAge       time.Duration
	Secure       bool // Secure cookie em produção (TLS)
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, maxAge time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{LoginUseCase: loginUC, MaxAge: maxAge, Secure: secure}
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func publicUser(u *entity.User) userView {
	return userView{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	output, err := h.LoginUseCase.Execute(r.Context(), input)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok {
			if domainErr.Code == usecase.CodeInvalidCredentials {
				respondError(w, http.StatusUnauthorized, domainErr.Message)
			} else {
				respondError(w, http.StatusBadRequest, domainErr.Message)
			}
			return
		}
		log.Printf("login error: %v", err)
		respondError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	http.SetCookie(w, h.sessionCookie(output.Token, int(h.MaxAge.Seconds())))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    publicUser(output.User),
	})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Não autenticado")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"user": publicUser(user)})
}

// HandleLogout limpa o cookie. Não existe lista de revogação: o token em si
// continua válido até expirar, só a apresentação automática dele é removida.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
