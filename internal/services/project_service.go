package services

import (
	"errors"
	"fmt"
	"strings"

	"davidyusaku.my.id/internal/models"
)

// ErrProjectNotFound is returned when no project matches a lookup
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects. The result is a copy; the service is shared
// across requests and must stay read-only.
func (s *ProjectService) GetAll() []models.Project {
	all := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		all[i] = clone(p)
	}
	return all
}

// Featured returns the projects flagged as featured, in display order
func (s *ProjectService) Featured() []models.Project {
	featured := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Featured {
			featured = append(featured, clone(p))
		}
	}
	return featured
}

// TechStacks returns the tech list of every project, in display order
func (s *ProjectService) TechStacks() [][]string {
	stacks := make([][]string, len(s.projects))
	for i, p := range s.projects {
		stacks[i] = append([]string(nil), p.Tech...)
	}
	return stacks
}

// GetByName returns a specific project by name. Matching ignores case.
func (s *ProjectService) GetByName(name string) (models.Project, error) {
	for _, p := range s.projects {
		if strings.EqualFold(p.Name, name) {
			return clone(p), nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
}

func clone(p models.Project) models.Project {
	p.Tech = append([]string(nil), p.Tech...)
	return p
}
