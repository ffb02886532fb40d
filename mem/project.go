// Package mem provides in-memory service implementations with instance
// lifetime, the default stores when no database is configured.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/google/uuid"
)

// Ensure ProjectService implements siteforge.ProjectService at compile time.
var _ siteforge.ProjectService = (*ProjectService)(nil)

// ProjectService stores projects in a map guarded by a RWMutex. Safe for
// concurrent use.
type ProjectService struct {
	mu       sync.RWMutex
	projects map[string]*siteforge.Project
}

// NewProjectService creates an empty ProjectService.
func NewProjectService() *ProjectService {
	return &ProjectService{projects: make(map[string]*siteforge.Project)}
}

// SaveProject validates and stores the project under a fresh ID. The stored
// copy is detached from the caller's pointer.
func (s *ProjectService) SaveProject(ctx context.Context, project *siteforge.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	project.ID = uuid.NewString()
	project.SavedAt = time.Now().UTC()

	stored := *project

	s.mu.Lock()
	s.projects[stored.ID] = &stored
	s.mu.Unlock()
	return nil
}

// FindProjects returns all projects ordered by SavedAt descending.
func (s *ProjectService) FindProjects(ctx context.Context) ([]*siteforge.Project, error) {
	s.mu.RLock()
	projects := make([]*siteforge.Project, 0, len(s.projects))
	for _, p := range s.projects {
		copied := *p
		projects = append(projects, &copied)
	}
	s.mu.RUnlock()

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].SavedAt.After(projects[j].SavedAt)
	})
	return projects, nil
}

// FindProjectByID retrieves a project by ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*siteforge.Project, error) {
	s.mu.RLock()
	p, ok := s.projects[id]
	s.mu.RUnlock()

	if !ok {
		return nil, siteforge.Errorf(siteforge.ENOTFOUND, "project %q not found", id)
	}
	copied := *p
	return &copied, nil
}

// DeleteProject removes a project by ID.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return siteforge.Errorf(siteforge.ENOTFOUND, "project %q not found", id)
	}
	delete(s.projects, id)
	return nil
}
