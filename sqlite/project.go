package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siteforge.ProjectService = (*ProjectService)(nil)

// ProjectService implements siteforge.ProjectService using SQLite. The
// business facts and the free-form data bundle are stored as JSON columns.
type ProjectService struct {
	db *DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *DB) *ProjectService {
	return &ProjectService{db: db}
}

// SaveProject validates and stores the project under a fresh ID.
func (s *ProjectService) SaveProject(ctx context.Context, project *siteforge.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	project.ID = uuid.NewString()
	project.SavedAt = time.Now().UTC()

	businessInfo, err := json.Marshal(project.BusinessInfo)
	if err != nil {
		return fmt.Errorf("failed to encode business info: %w", err)
	}
	data, err := json.Marshal(project.Data)
	if err != nil {
		return fmt.Errorf("failed to encode project data: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, business_info, data, saved_at)
		VALUES (?, ?, ?, ?, ?)
	`, project.ID, project.Name, string(businessInfo), string(data),
		project.SavedAt.Format(time.RFC3339Nano))

	return err
}

// FindProjects returns all projects ordered by saved_at descending.
func (s *ProjectService) FindProjects(ctx context.Context) ([]*siteforge.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, business_info, data, saved_at
		FROM projects
		ORDER BY saved_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*siteforge.Project
	for rows.Next() {
		project, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// FindProjectByID retrieves a project by ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*siteforge.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, business_info, data, saved_at
		FROM projects
		WHERE id = ?
	`, id)

	project, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, siteforge.Errorf(siteforge.ENOTFOUND, "project %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject permanently removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return siteforge.Errorf(siteforge.ENOTFOUND, "project %q not found", id)
	}
	return nil
}

// scanProject reads one projects row via the given Scan function.
func scanProject(scan func(...any) error) (*siteforge.Project, error) {
	var (
		project      siteforge.Project
		businessInfo string
		data         string
		savedAt      string
	)
	if err := scan(&project.ID, &project.Name, &businessInfo, &data, &savedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(businessInfo), &project.BusinessInfo); err != nil {
		return nil, fmt.Errorf("failed to decode business info: %w", err)
	}
	if data != "" && data != "null" {
		if err := json.Unmarshal([]byte(data), &project.Data); err != nil {
			return nil, fmt.Errorf("failed to decode project data: %w", err)
		}
	}

	var err error
	project.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse saved_at: %w", err)
	}

	return &project, nil
}
