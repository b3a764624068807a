package domain

// Project represents a client engagement employees book hours against.
type Project struct {
	ProjectID  string `json:"projectID"` // Primary Key (UUID)
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
