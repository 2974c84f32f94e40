package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/usecase"
)

// LeadHandler serve o painel admin: listagem paginada e mutações pontuais.
// Todas as rotas passam pelo middleware de autenticação antes de chegar aqui.
type LeadHandler struct {
	ManageUseCase *usecase.ManageLeadsUseCase
}

func NewLeadHandler(manageUC *usecase.ManageLeadsUseCase) *LeadHandler {
	return &LeadHandler{ManageUseCase: manageUC}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	output, err := h.ManageUseCase.List(r.Context(), usecase.ListLeadsInput{
		Page:   page,
		Limit:  limit,
		Status: query.Get("status"),
		Search: query.Get("search"),
	})
	if err != nil {
		log.Printf("list leads error: %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao buscar leads")
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	lead, err := h.ManageUseCase.Update(r.Context(), input)
	if err != nil {
		h.respondMutationError(w, err, "Erro ao atualizar lead")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"lead": lead})
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	if err := h.ManageUseCase.Delete(r.Context(), id); err != nil {
		h.respondMutationError(w, err, "Erro ao deletar lead")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *LeadHandler) respondMutationError(w http.ResponseWriter, err error, genericMsg string) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		respondError(w, http.StatusNotFound, "Lead não encontrado")
	case usecase.IsDomainError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("lead mutation error: %v", err)
		respondError(w, http.StatusInternalServerError, genericMsg)
	}
}
