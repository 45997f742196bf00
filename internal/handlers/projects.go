package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"davidyusaku.my.id/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.GetAll())
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.Featured())
}

// GetProject handles GET /api/projects/{name}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	project, err := h.projectService.GetByName(name)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
