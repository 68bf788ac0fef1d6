package dto

import "github.com/noah-isme/campus-nexus-api/internal/models"

// DashboardOverviewResponse composes the per-module summaries shown on the
// landing view.
type DashboardOverviewResponse struct {
	Courses     models.CourseSummary     `json:"courses"`
	Enrollment  models.EnrollmentSummary `json:"enrollment"`
	Fees        models.FeeSummary        `json:"fees"`
	Lecturers   models.LecturerSummary   `json:"lecturers"`
	Assistants  models.AssistantSummary  `json:"assistants"`
	GeneratedAt string                   `json:"generated_at"`
}
