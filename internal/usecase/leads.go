package usecase

import (
	"context"
	"errors"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/database"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type ListLeadsInput struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type ListLeadsOutput struct {
	Leads      []entity.Lead `json:"leads"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

type UpdateLeadInput struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ManageLeadsUseCase is the admin-side read and mutation service. Callers are
// assumed to be authenticated already; the HTTP layer enforces that.
//
// Concurrent updates to the same lead are last-writer-wins: each UPDATE is
// atomic in Postgres and there is no version counter.
type ManageLeadsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewManageLeadsUseCase(leads LeadRepositoryInterface) *ManageLeadsUseCase {
	return &ManageLeadsUseCase{Leads: leads}
}

func (uc *ManageLeadsUseCase) List(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	leads, total, err := uc.Leads.List(ctx, database.ListFilter{
		Status: input.Status,
		Search: input.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}

	totalPages := (total + limit - 1) / limit

	return &ListLeadsOutput{
		Leads:      leads,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Update aplica uma atualização parcial: só status e/ou notes informados mudam.
func (uc *ManageLeadsUseCase) Update(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	if input.ID == "" {
		return nil, &DomainError{Code: CodeMissingFields, Message: "ID é obrigatório"}
	}

	if input.Status != nil && !entity.IsValidStatus(*input.Status) {
		return nil, &DomainError{
			Code:    CodeInvalidStatus,
			Message: "Status inválido: " + *input.Status,
		}
	}

	lead, err := uc.Leads.Update(ctx, input.ID, input.Status, input.Notes)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}

	return lead, nil
}

func (uc *ManageLeadsUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &DomainError{Code: CodeMissingFields, Message: "ID é obrigatório"}
	}

	if err := uc.Leads.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return err
		}
		return &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}

	return nil
}
