package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/capdigital/capsite-api/internal/entity"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User  *entity.User
	Token string
}

type LoginUseCase struct {
	Users UserRepositoryInterface
	Codec TokenEncoder
}

func NewLoginUseCase(users UserRepositoryInterface, codec TokenEncoder) *LoginUseCase {
	return &LoginUseCase{Users: users, Codec: codec}
}

// Execute verifica as credenciais e emite o token de sessão. A senha é
// comparada contra o hash bcrypt da conta; uma conta desconhecida e uma senha
// errada produzem o mesmo erro para não vazar quais emails existem.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, &DomainError{
			Code:    CodeMissingFields,
			Message: "Email e senha são obrigatórios",
		}
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.Codec.Encode(user.ID, user.Email)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: err.Error()}
	}

	return &LoginOutput{User: user, Token: token}, nil
}

func invalidCredentials() error {
	return &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "Credenciais inválidas",
	}
}
