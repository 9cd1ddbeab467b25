package cases

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("case not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, c *Case) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO cases (
			user_id, full_name, date_of_birth, address, phone, email,
			case_number, case_type, court_name, charge_date, arrest_date,
			charges, circumstances, alibi, witnesses, evidence,
			prior_record, additional_info
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING id
	`,
		c.UserID, c.FullName, c.DateOfBirth, c.Address, c.Phone, c.Email,
		c.CaseNumber, c.CaseType, c.CourtName, c.ChargeDate, c.ArrestDate,
		c.Charges, c.Circumstances, c.Alibi, c.Witnesses, c.Evidence,
		c.PriorRecord, c.AdditionalInfo,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// MarkPDFGenerated flags the case after a successful render. It is a second,
// independent write: a crash between Insert and this call only leaves a case
// not yet marked generated.
func (r *Repository) MarkPDFGenerated(ctx context.Context, id string) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE cases SET pdf_generated = TRUE, pdf_generated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}

// GetByID fetches one case, enforcing ownership in the query itself.
func (r *Repository) GetByID(ctx context.Context, id, userID string) (*Case, error) {
	var c Case
	err := r.Pool.QueryRow(ctx, `
		SELECT id, user_id, full_name, date_of_birth, address, phone, email,
		       case_number, case_type, court_name, charge_date, arrest_date,
		       charges, circumstances, alibi, witnesses, evidence,
		       prior_record, additional_info, pdf_generated, pdf_generated_at,
		       created_at
		FROM cases
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&c.ID, &c.UserID, &c.FullName, &c.DateOfBirth, &c.Address, &c.Phone, &c.Email,
		&c.CaseNumber, &c.CaseType, &c.CourtName, &c.ChargeDate, &c.ArrestDate,
		&c.Charges, &c.Circumstances, &c.Alibi, &c.Witnesses, &c.Evidence,
		&c.PriorRecord, &c.AdditionalInfo, &c.PDFGenerated, &c.PDFGeneratedAt,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, user_id, full_name, case_number, case_type, court_name,
		       charge_date, charges, pdf_generated, pdf_generated_at, created_at
		FROM cases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Case, 0)
	for rows.Next() {
		var c Case
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.FullName, &c.CaseNumber, &c.CaseType,
			&c.CourtName, &c.ChargeDate, &c.Charges, &c.PDFGenerated,
			&c.PDFGeneratedAt, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
