package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/capdigital/capsite-api/internal/infra/http/middleware"
	"github.com/capdigital/capsite-api/internal/usecase"
)

// ContactHandler recebe o formulário público de contato. Não exige sessão,
// então carrega rate limiting por IP.
type ContactHandler struct {
	SubmitUseCase *usecase.SubmitLeadUseCase
	rateLimiter   *RateLimiter
}

func NewContactHandler(submitUC *usecase.SubmitLeadUseCase) *ContactHandler {
	return &ContactHandler{
		SubmitUseCase: submitUC,
		rateLimiter:   NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondError(w, http.StatusTooManyRequests, "Muitas tentativas. Tente novamente em instantes.")
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	output, err := h.SubmitUseCase.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Falha de entrega é a falha da chamada; detalhe fica no log.
		middleware.RecordLeadNotification("error")
		log.Printf("contact submit error: %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao enviar email")
		return
	}

	middleware.RecordLeadCaptured()
	middleware.RecordLeadNotification("sent")
	respondJSON(w, http.StatusOK, output)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
