package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// SourceWebsite is the origin channel recorded on every lead captured by the
// public contact form.
const SourceWebsite = "website"

// Lead statuses. The set is closed: anything else must be rejected before it
// reaches the database.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`

	// Marketing attribution, passed through opaque from the ad platforms.
	FBC   string `json:"fbc,omitempty"`
	FBP   string `json:"fbp,omitempty"`
	GCLID string `json:"gclid,omitempty"`

	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, email, phone, message, fbc, fbp, gclid string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		FBC:       fbc,
		FBP:       fbp,
		GCLID:     gclid,
		Source:    SourceWebsite,
		Status:    StatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	default:
		return false
	}
}
