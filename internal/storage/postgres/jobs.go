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

const jobColumns = `id, title, company, location, job_type, work_mode, salary_min, salary_max,
		salary_currency, description, skills, status, recruiter_id, applications_count, views,
		created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType := req.JobType
	if jobType == "" {
		jobType = "Full-time"
	}
	workMode := req.WorkMode
	if workMode == "" {
		workMode = "On-site"
	}
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "INR"
	}
	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.JobStatusActive
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO jobs (id, title, company, location, job_type, work_mode, salary_min, salary_max,
			salary_currency, description, skills, status, recruiter_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.Title,
		req.Company,
		req.Location,
		jobType,
		workMode,
		req.SalaryMin,
		req.SalaryMax,
		currency,
		req.Description,
		skills,
		status,
		req.RecruiterID,
	)
	if err != nil {
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	createdJob, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating job: foreign key violation (recruiter_id: %s): %v\n", req.RecruiterID, err)
			return nil, fmt.Errorf("failed to create job: invalid recruiter ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return &createdJob, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return &job, nil
}

// List retrieves active jobs matching the search filters, newest first.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	baseQuery := `SELECT ` + jobColumns + ` FROM jobs`
	conditions := []string{"status = $1"}
	args := []interface{}{models.JobStatusActive}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", len(args), len(args), len(args)))
	}
	if req.Location != "" {
		args = append(args, "%"+req.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if req.JobType != "" {
		args = append(args, req.JobType)
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", len(args)))
	}
	if req.WorkMode != "" {
		args = append(args, req.WorkMode)
		conditions = append(conditions, fmt.Sprintf("work_mode = $%d", len(args)))
	}
	if req.MinSalary != nil {
		args = append(args, *req.MinSalary)
		conditions = append(conditions, fmt.Sprintf("salary_min >= $%d", len(args)))
	}
	if req.MaxSalary != nil {
		args = append(args, *req.MaxSalary)
		conditions = append(conditions, fmt.Sprintf("salary_max <= $%d", len(args)))
	}
	if len(req.Skills) > 0 {
		args = append(args, req.Skills)
		conditions = append(conditions, fmt.Sprintf("skills && $%d", len(args))) // array overlap
	}

	query := buildListQuery(baseQuery, conditions, &args, "created_at DESC", req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// ListByRecruiter retrieves every job posted by a recruiter, newest first.
func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		log.Printf("Error querying jobs by recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to query jobs by recruiter: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs by recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to scan jobs by recruiter: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}

	addClause := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addClause("title", *req.Title)
	}
	if req.Company != nil {
		addClause("company", *req.Company)
	}
	if req.Location != nil {
		addClause("location", *req.Location)
	}
	if req.JobType != nil {
		addClause("job_type", *req.JobType)
	}
	if req.WorkMode != nil {
		addClause("work_mode", *req.WorkMode)
	}
	if req.SalaryMin != nil {
		addClause("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addClause("salary_max", *req.SalaryMax)
	}
	if req.SalaryCurrency != nil {
		addClause("salary_currency", *req.SalaryCurrency)
	}
	if req.Description != nil {
		addClause("description", *req.Description)
	}
	if req.Skills != nil {
		addClause("skills", req.Skills)
	}
	if req.Status != nil {
		addClause("status", *req.Status)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on job %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING `+jobColumns, strings.Join(setClauses, ", "), len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	updatedJob, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	log.Printf("Job updated successfully: %s", updatedJob.ID)
	return &updatedJob, nil
}

// Delete removes a job by its ID. The caller is responsible for removing the
// job's applications first (see ApplicationRepository.DeleteByJob).
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", id)
	return nil
}

// IncrementApplicationsCount bumps the derived counter by one. The increment
// itself is atomic in SQL but is issued after the application insert without a
// surrounding transaction, so the pair is best-effort by design.
func (r *JobRepo) IncrementApplicationsCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE jobs SET applications_count = applications_count + 1, updated_at = NOW() WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error incrementing applications count for job %s: %v\n", id, err)
		return fmt.Errorf("failed to increment applications count for job %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// IncrementViews bumps the views counter by one.
func (r *JobRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE jobs SET views = views + 1 WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error incrementing views for job %s: %v\n", id, err)
		return fmt.Errorf("failed to increment views for job %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
