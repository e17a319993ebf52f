package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"placeverse/internal/models"
	"placeverse/internal/storage"
	"placeverse/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, student_id, recruiter_id, status, cover_letter, resume_url,
		recruiter_notes, interview_date, interview_time, interview_mode, interview_location,
		applied_at, last_updated`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts a new application with status pending. The UNIQUE(job_id,
// student_id) index is the final guard against duplicate applications; its
// violation is surfaced as storage.ErrConflict so racing submissions and the
// service-level pre-check produce the same user-facing error.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, student_id, recruiter_id, status, cover_letter,
			resume_url, applied_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.JobID,
		req.StudentID,
		req.RecruiterID,
		models.ApplicationStatusPending,
		req.CoverLetter,
		req.ResumeURL,
	)
	if err != nil {
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	app, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on (job_id, student_id)
				log.Printf("Error creating application: duplicate for job %s / student %s", req.JobID, req.StudentID)
				return nil, fmt.Errorf("failed to create application: duplicate application: %w", storage.ErrConflict)
			case "23503": // foreign_key_violation
				log.Printf("Error creating application: foreign key violation: %v\n", err)
				return nil, fmt.Errorf("failed to create application: invalid reference: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return &app, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	app, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return &app, nil
}

// GetByJobAndStudent retrieves the application for a (job, student) pair, if any.
func (r *ApplicationRepo) GetByJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND student_id = $2`

	rows, err := r.db.Query(ctx, query, jobID, studentID)
	if err != nil {
		log.Printf("Error querying application for job %s / student %s: %v\n", jobID, studentID, err)
		return nil, fmt.Errorf("failed to get application by job and student: %w", err)
	}

	app, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application for job %s / student %s: %v\n", jobID, studentID, err)
		return nil, fmt.Errorf("failed to get application by job and student: %w", err)
	}

	return &app, nil
}

func (r *ApplicationRepo) list(ctx context.Context, query string, arg interface{}) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

// ListByStudent retrieves a student's applications, newest first.
func (r *ApplicationRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1 ORDER BY applied_at DESC`

	apps, err := r.list(ctx, query, studentID)
	if err != nil {
		log.Printf("Error listing applications for student %s: %v\n", studentID, err)
		return nil, fmt.Errorf("failed to list applications by student: %w", err)
	}
	return apps, nil
}

// ListByJob retrieves a job's applications, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`

	apps, err := r.list(ctx, query, jobID)
	if err != nil {
		log.Printf("Error listing applications for job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	return apps, nil
}

// ListByRecruiter retrieves every application against a recruiter's jobs, newest first.
func (r *ApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE recruiter_id = $1 ORDER BY applied_at DESC`

	apps, err := r.list(ctx, query, recruiterID)
	if err != nil {
		log.Printf("Error listing applications for recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to list applications by recruiter: %w", err)
	}
	return apps, nil
}

// UpdateStatus writes the new status and bumps last_updated. Notes overwrite
// the previous value only when provided; interview fields likewise.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.SetApplicationStatusRequest) (*models.Application, error) {
	setClauses := []string{}
	args := []interface{}{}

	addClause := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	addClause("status", req.Status)
	if req.RecruiterNotes != nil {
		addClause("recruiter_notes", *req.RecruiterNotes)
	}
	if req.Interview != nil {
		addClause("interview_date", req.Interview.Date)
		addClause("interview_time", req.Interview.Time)
		addClause("interview_mode", req.Interview.Mode)
		addClause("interview_location", req.Interview.Location)
	}
	setClauses = append(setClauses, "last_updated = NOW()")

	args = append(args, req.ID)
	query := fmt.Sprintf(`
		UPDATE applications
		SET %s
		WHERE id = $%d
		RETURNING `+applicationColumns, strings.Join(setClauses, ", "), len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating application status for %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status for %s: %w", req.ID, err)
	}

	app, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status for %s: %w", req.ID, err)
	}

	return &app, nil
}

// StatsByRecruiter groups a recruiter's applications by status.
func (r *ApplicationRepo) StatsByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*models.ApplicationStats, error) {
	query := `SELECT status, COUNT(*) FROM applications WHERE recruiter_id = $1 GROUP BY status`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		log.Printf("Error querying application stats for recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to query application stats: %w", err)
	}
	defer rows.Close()

	stats := &models.ApplicationStats{ByStatus: make(map[models.ApplicationStatus]int)}
	for _, status := range models.ApplicationStatuses {
		stats.ByStatus[status] = 0
	}

	for rows.Next() {
		var status models.ApplicationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			log.Printf("Error scanning application stats for recruiter %s: %v\n", recruiterID, err)
			return nil, fmt.Errorf("failed to scan application stats: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application stats: %w", err)
	}

	return stats, nil
}

// DeleteByJob removes all applications for a job. Zero rows affected is fine;
// a job may have no applications.
func (r *ApplicationRepo) DeleteByJob(ctx context.Context, jobID uuid.UUID) error {
	query := `DELETE FROM applications WHERE job_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		log.Printf("Error deleting applications for job %s: %v\n", jobID, err)
		return fmt.Errorf("failed to delete applications for job %s: %w", jobID, err)
	}

	log.Printf("Deleted %d application(s) for job %s", cmdTag.RowsAffected(), jobID)
	return nil
}
