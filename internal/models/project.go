package models

// Project represents a row in the projects table.
type Project struct {
	ProjectID  string `db:"project_id"`
	Name       string `db:"name"`
	ClientName string `db:"client_name"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
