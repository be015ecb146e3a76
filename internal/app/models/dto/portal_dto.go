package dto

// CreateResourceRequest represents a new learning material. Title and link
// are required; description is optional.
type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required,url"`
}

// CreateScholarshipRequest represents a new scholarship listing. All three
// fields are required.
type CreateScholarshipRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
}

// CreateTimetableEntryRequest represents a new scheduled class. EndTime is
// the raw end time before the automatic break is appended.
type CreateTimetableEntryRequest struct {
	Day       string `json:"day" binding:"required,weekday"`
	StartTime string `json:"startTime" binding:"required,clocktime"`
	EndTime   string `json:"endTime" binding:"required,clocktime"`
	Subject   string `json:"subject" binding:"required"`
}

// DashboardStatsResponse carries the portal's entity counts.
type DashboardStatsResponse struct {
	Resources    int64 `json:"resources"`
	Classes      int64 `json:"classes"`
	Scholarships int64 `json:"scholarships"`
}
