package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ComplianceRepository handles compliance record data access.
type ComplianceRepository struct {
	pool *pgxpool.Pool
}

// NewComplianceRepository creates a new ComplianceRepository.
func NewComplianceRepository(pool *pgxpool.Pool) *ComplianceRepository {
	return &ComplianceRepository{pool: pool}
}

const complianceColumns = `id, family_id, school_year_id, days_completed, days_required,
	notice_of_intent_filed, testing_completed, status, created_at, updated_at`

func scanCompliance(row interface{ Scan(...any) error }) (*model.ComplianceRecord, error) {
	c := &model.ComplianceRecord{}
	err := row.Scan(&c.ID, &c.FamilyID, &c.SchoolYearID, &c.DaysCompleted, &c.DaysRequired,
		&c.NoticeOfIntentFiled, &c.TestingCompleted, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a compliance record scoped to a family.
func (r *ComplianceRepository) GetByID(ctx context.Context, familyID, id int) (*model.ComplianceRecord, error) {
	return scanCompliance(r.pool.QueryRow(ctx,
		`SELECT `+complianceColumns+` FROM compliance_records WHERE id = $1 AND family_id = $2`, id, familyID))
}

// GetBySchoolYear retrieves the compliance record for a (family, year) pair.
func (r *ComplianceRepository) GetBySchoolYear(ctx context.Context, familyID, schoolYearID int) (*model.ComplianceRecord, error) {
	return scanCompliance(r.pool.QueryRow(ctx,
		`SELECT `+complianceColumns+` FROM compliance_records
		 WHERE family_id = $1 AND school_year_id = $2`, familyID, schoolYearID))
}

// Upsert creates or updates the derived day count and status for a
// (family, year) pair. The paperwork flags are preserved on conflict.
func (r *ComplianceRepository) Upsert(ctx context.Context, c *model.ComplianceRecord) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO compliance_records (family_id, school_year_id, days_completed, days_required, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (family_id, school_year_id) DO UPDATE
		 SET days_completed = EXCLUDED.days_completed,
		     days_required = EXCLUDED.days_required,
		     status = EXCLUDED.status,
		     updated_at = NOW()
		 RETURNING id, notice_of_intent_filed, testing_completed, created_at, updated_at`,
		c.FamilyID, c.SchoolYearID, c.DaysCompleted, c.DaysRequired, c.Status,
	).Scan(&c.ID, &c.NoticeOfIntentFiled, &c.TestingCompleted, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateFlags sets the paperwork flags on a compliance record.
func (r *ComplianceRepository) UpdateFlags(ctx context.Context, familyID, id int, noticeFiled, testingCompleted *bool) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE compliance_records
		 SET notice_of_intent_filed = COALESCE($1, notice_of_intent_filed),
		     testing_completed = COALESCE($2, testing_completed),
		     updated_at = NOW()
		 WHERE id = $3 AND family_id = $4`,
		noticeFiled, testingCompleted, id, familyID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
