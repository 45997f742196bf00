// Package registry declares the portfolio projects shown on the site.
//
// Entries are listed in display order. Append new projects to the end of
// the list.
package registry

import "davidyusaku.my.id/internal/models"

var projects = []models.Project{
	{
		Name:        "overblogged",
		Description: "A minimal, typography-focused technical blog built with Astro and deployed to Cloudflare Workers.",
		Tech:        []string{"Astro", "TypeScript", "Cloudflare Workers"},
		GitHub:      "https://github.com/davidyusaku-13/overblogged",
		Live:        "https://blog.davidyusaku.my.id",
		Featured:    true,
	},
	{
		Name:        "PRIMA",
		Description: "A reminder platform that simplifies patient communication for healthcare volunteers. Built with Next.js and deployed on Railway.",
		Tech:        []string{"Next.js", "TypeScript", "Railway"},
		GitHub:      "https://github.com/risetaid/prima",
		Live:        "https://prima-production.up.railway.app/",
		Featured:    true,
	},
}

// Projects returns a copy of every project in declaration order.
// Callers may modify the result without affecting the registry.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// List returns the projects wrapped in a ProjectList envelope
func List() *models.ProjectList {
	return &models.ProjectList{Projects: Projects()}
}
