package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"davidyusaku.my.id/internal/models"
	"davidyusaku.my.id/internal/registry"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: export <output-dir>")
		os.Exit(1)
	}

	if err := run(os.Args[1], registry.List()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}

// run writes the project list as projects.json and projects.yaml into outputDir
func run(outputDir string, list *models.ProjectList) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if err := writeFile(outputDir, "projects.json", jsonData); err != nil {
		return err
	}

	yamlData, err := yaml.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return writeFile(outputDir, "projects.yaml", yamlData)
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	fmt.Printf("  Created %s\n", path)
	return nil
}
