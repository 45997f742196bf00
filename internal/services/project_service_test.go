package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"davidyusaku.my.id/internal/models"
	"davidyusaku.my.id/internal/registry"
)

func names(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}

func TestProjectService_Featured(t *testing.T) {
	svc := NewProjectService(registry.Projects())
	require.Equal(t, []string{"overblogged", "PRIMA"}, names(svc.Featured()))
}

func TestProjectService_FeaturedSkipsUnflagged(t *testing.T) {
	svc := NewProjectService([]models.Project{
		{Name: "a", Featured: true},
		{Name: "b"},
		{Name: "c", Featured: false},
		{Name: "d", Featured: true},
	})
	require.Equal(t, []string{"a", "d"}, names(svc.Featured()))
}

func TestProjectService_FeaturedEmpty(t *testing.T) {
	svc := NewProjectService(nil)
	require.Empty(t, svc.Featured())
	require.NotNil(t, svc.Featured())
}

func TestProjectService_TechStacks(t *testing.T) {
	svc := NewProjectService(registry.Projects())
	require.Equal(t, [][]string{
		{"Astro", "TypeScript", "Cloudflare Workers"},
		{"Next.js", "TypeScript", "Railway"},
	}, svc.TechStacks())
}

func TestProjectService_GetAll(t *testing.T) {
	svc := NewProjectService(registry.Projects())
	require.Equal(t, registry.Projects(), svc.GetAll())
}

func TestProjectService_GetByName(t *testing.T) {
	svc := NewProjectService(registry.Projects())

	p, err := svc.GetByName("PRIMA")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/risetaid/prima", p.GitHub)

	p, err = svc.GetByName("prima")
	require.NoError(t, err)
	require.Equal(t, "PRIMA", p.Name)

	_, err = svc.GetByName("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrProjectNotFound))
	require.Contains(t, err.Error(), "missing")
}

func TestProjectService_ResultsDoNotAliasState(t *testing.T) {
	svc := NewProjectService(registry.Projects())

	p, err := svc.GetByName("prima")
	require.NoError(t, err)
	p.Name = "mutated"
	p.Tech[0] = "mutated"

	svc.TechStacks()[0][0] = "mutated"

	all := svc.GetAll()
	all[0].Description = "mutated"
	all[0].Tech[1] = "mutated"

	featured := svc.Featured()
	featured[0].Tech[2] = "mutated"

	require.Equal(t, registry.Projects(), svc.GetAll())
}
