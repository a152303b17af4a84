// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository is one GitHub repository as returned by the search API,
// reduced to the fields this tool persists and analyzes.
// It is the core domain entity of this application.
// Description and Language are pointers because the API returns null for both.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Language    *string   `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Topics      []string  `json:"topics"`
}
