package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/capdigital/capsite-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// ListFilter restricts and paginates a listing. Zero values mean "no filter".
type ListFilter struct {
	Status string // exact match; "" or "all" disables
	Search string // case-insensitive substring on name, email and phone
	Limit  int
	Offset int
}

const leadColumns = `id, name, email, phone, message, fbc, fbp, gclid, source, status, notes, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO capsite_leads (id, name, email, phone, message, fbc, fbp, gclid, source, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Message),
		nullString(lead.FBC),
		nullString(lead.FBP),
		nullString(lead.GCLID),
		lead.Source,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}

// List devolve a página pedida e o total de linhas antes da paginação.
// Ordenação fixa: mais recente primeiro.
func (r *LeadRepository) List(ctx context.Context, filter ListFilter) ([]entity.Lead, int, error) {
	where, args := buildLeadFilter(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM capsite_leads` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	query := `SELECT ` + leadColumns + ` FROM capsite_leads` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// Update aplica uma atualização parcial: só os campos não-nil mudam.
func (r *LeadRepository) Update(ctx context.Context, id string, status, notes *string) (*entity.Lead, error) {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{}

	if status != nil {
		args = append(args, *status)
		set = append(set, "status = $"+strconv.Itoa(len(args)))
	}
	if notes != nil {
		args = append(args, *notes)
		set = append(set, "notes = $"+strconv.Itoa(len(args)))
	}

	args = append(args, id)
	query := `UPDATE capsite_leads SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}

	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM capsite_leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func buildLeadFilter(filter ListFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := "$" + strconv.Itoa(len(args))
		conditions = append(conditions, "(name ILIKE "+p+" OR email ILIKE "+p+" OR phone ILIKE "+p+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (entity.Lead, error) {
	var (
		lead                   entity.Lead
		phone, message         sql.NullString
		fbc, fbp, gclid, notes sql.NullString
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&phone,
		&message,
		&fbc,
		&fbp,
		&gclid,
		&lead.Source,
		&lead.Status,
		&notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return entity.Lead{}, err
	}

	lead.Phone = phone.String
	lead.Message = message.String
	lead.FBC = fbc.String
	lead.FBP = fbp.String
	lead.GCLID = gclid.String
	lead.Notes = notes.String
	return lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
