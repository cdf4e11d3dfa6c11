package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/knmedan/showcase-backend/internal/projects/domain"
)

const timeFormat = "2006-01-02 15:04:05"

// ProjectRepository provides persistence operations for project submissions.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Add inserts a new submission. Status is forced to pending here; field
// validation is the submission handler's job.
func (r *ProjectRepository) Add(ctx context.Context, sub domain.NewSubmission) (int64, error) {
	screenshots, err := json.Marshal(sub.Screenshots)
	if err != nil {
		return 0, fmt.Errorf("marshal screenshots: %w", err)
	}

	const q = `
INSERT INTO projects (project_name, project_link, student_name, teacher_name, module_name, screenshots, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	res, err := r.db.ExecContext(ctx, q,
		sub.ProjectName, sub.ProjectLink, sub.StudentName, sub.TeacherName,
		sub.ModuleName, string(screenshots), string(domain.StatusPending),
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// List returns projects newest first. With approvedOnly set, only approved
// rows are returned. A non-empty search matches project, teacher and student
// names case-insensitively; a non-empty moduleFilter matches the module name
// exactly.
func (r *ProjectRepository) List(ctx context.Context, search, moduleFilter string, approvedOnly bool) ([]domain.Project, error) {
	q := `
SELECT id, project_name, project_link, student_name, teacher_name, module_name, screenshots, status, created_at
FROM projects
WHERE 1=1`
	args := make([]any, 0, 4)

	if approvedOnly {
		q += ` AND status = ?`
		args = append(args, string(domain.StatusApproved))
	}
	if search != "" {
		q += ` AND (project_name LIKE ? OR teacher_name LIKE ? OR student_name LIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if moduleFilter != "" {
		q += ` AND module_name = ?`
		args = append(args, moduleFilter)
	}

	q += ` ORDER BY created_at DESC, id DESC;`

	return r.queryProjects(ctx, q, args...)
}

// ListPending returns all pending submissions, newest first.
func (r *ProjectRepository) ListPending(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, project_name, project_link, student_name, teacher_name, module_name, screenshots, status, created_at
FROM projects
WHERE status = ?
ORDER BY created_at DESC, id DESC;
`
	return r.queryProjects(ctx, q, string(domain.StatusPending))
}

// ListAll returns every project ordered by moderation priority: pending
// first, then approved, then everything else, newest first within each group.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, project_name, project_link, student_name, teacher_name, module_name, screenshots, status, created_at
FROM projects
ORDER BY
	CASE status
		WHEN 'pending' THEN 1
		WHEN 'approved' THEN 2
		ELSE 3
	END,
	created_at DESC, id DESC;
`
	return r.queryProjects(ctx, q)
}

// GetByID returns a single project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
SELECT id, project_name, project_link, student_name, teacher_name, module_name, screenshots, status, created_at
FROM projects
WHERE id = ?;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateStatus sets a project's status and returns the number of rows
// affected. Zero means the id did not match any row; callers must treat
// that as not-found, never as success.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (int64, error) {
	if !status.Valid() {
		return 0, domain.ErrInvalidStatus
	}

	const q = `UPDATE projects SET status = ? WHERE id = ?;`
	res, err := r.db.ExecContext(ctx, q, string(status), id)
	if err != nil {
		return 0, fmt.Errorf("update project status: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes a project and returns the number of rows affected.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM projects WHERE id = ?;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("delete project: %w", err)
	}
	return res.RowsAffected()
}

func (r *ProjectRepository) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p           domain.Project
		link        sql.NullString
		student     sql.NullString
		teacher     sql.NullString
		screenshots sql.NullString
		status      string
		createdAt   string
	)

	err := row.Scan(&p.ID, &p.ProjectName, &link, &student, &teacher,
		&p.ModuleName, &screenshots, &status, &createdAt)
	if err != nil {
		return nil, err
	}

	p.ProjectLink = link.String
	p.StudentName = student.String
	p.TeacherName = teacher.String
	p.Status = domain.Status(status)

	p.Screenshots = []string{}
	if screenshots.String != "" {
		if err := json.Unmarshal([]byte(screenshots.String), &p.Screenshots); err != nil {
			return nil, fmt.Errorf("unmarshal screenshots for project %d: %w", p.ID, err)
		}
	}

	if t, err := time.Parse(timeFormat, createdAt); err == nil {
		p.CreatedAt = t
	} else if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}

	return &p, nil
}
