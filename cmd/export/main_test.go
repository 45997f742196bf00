package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"davidyusaku.my.id/internal/models"
	"davidyusaku.my.id/internal/registry"
)

func TestRun_WritesJSONAndYAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, run(dir, registry.List()))

	data, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	var fromJSON models.ProjectList
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Equal(t, registry.Projects(), fromJSON.Projects)

	data, err = os.ReadFile(filepath.Join(dir, "projects.yaml"))
	require.NoError(t, err)
	var fromYAML models.ProjectList
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Equal(t, registry.Projects(), fromYAML.Projects)
}

func TestRun_OmitsAbsentLinks(t *testing.T) {
	dir := t.TempDir()
	list := &models.ProjectList{Projects: []models.Project{
		{Name: "draft", Description: "Unreleased", Tech: []string{"Go"}},
	}}
	require.NoError(t, run(dir, list))

	data, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "github")
	require.NotContains(t, string(data), "live")
	require.NotContains(t, string(data), "featured")
}
