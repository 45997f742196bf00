package models

// Project represents a portfolio project
type Project struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	GitHub      string   `json:"github,omitempty" yaml:"github,omitempty"`
	Live        string   `json:"live,omitempty" yaml:"live,omitempty"`
	Featured    bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
