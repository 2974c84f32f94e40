package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/mail"
)

type SubmitLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	FBC     string `json:"fbc"`
	FBP     string `json:"fbp"`
	GCLID   string `json:"gclid"`
}

type SubmitLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SubmitLeadUseCase struct {
	Leads        LeadRepositoryInterface
	EmailService EmailService
}

func NewSubmitLeadUseCase(leads LeadRepositoryInterface, emailService EmailService) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{Leads: leads, EmailService: emailService}
}

// Execute persiste o lead e dispara a notificação por email.
//
// A persistência é best-effort: se o banco falhar, o erro vai para o log e o
// email ainda é enviado, porque um humano lendo a notificação vale mais do que
// abortar o contato inteiro. Já a falha de email é devolvida ao chamador.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, &DomainError{
			Code:    CodeMissingFields,
			Message: "Nome e email são obrigatórios",
		}
	}

	lead, err := entity.NewLead(
		input.Name,
		input.Email,
		input.Phone,
		input.Message,
		input.FBC,
		input.FBP,
		input.GCLID,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeMissingFields, Message: err.Error()}
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		log.Printf("lead %s não persistido (seguindo com a notificação): %v", lead.ID, err)
	}

	if err := uc.dispatch(ctx, mail.LeadNotificationData{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		FBC:     input.FBC,
		FBP:     input.FBP,
		GCLID:   input.GCLID,
	}); err != nil {
		return nil, &TechnicalError{Code: CodeMailError, Message: err.Error()}
	}

	return &SubmitLeadOutput{Success: true, Message: "Contato recebido com sucesso"}, nil
}

// dispatch respeita o deadline do contexto mesmo com um cliente SMTP que não
// aceita context. Uma única tentativa, sem retry.
func (uc *SubmitLeadUseCase) dispatch(ctx context.Context, data mail.LeadNotificationData) error {
	done := make(chan error, 1)
	go func() {
		done <- uc.EmailService.SendLeadNotification(data)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
