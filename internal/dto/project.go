package dto

import (
	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a new project.
type CreateProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	ClientName string `json:"clientName"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProjectRequest struct {
	Name       *string `json:"name"`
	ClientName *string `json:"clientName"`
	IsActive   *bool   `json:"isActive"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID  string `json:"projectID"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	IsActive   bool   `json:"isActive"`
}

// ListProjectsResponse wraps the list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:  p.ProjectID,
		Name:       p.Name,
		ClientName: p.ClientName,
		IsActive:   p.IsActive,
	}
}
