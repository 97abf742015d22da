package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	AdminID string `json:"admin_id" example:"507f1f77bcf86cd799439011"`
}

type ProfileCreatedResponse struct {
	Message   string `json:"message" example:"Faculty profile created successfully"`
	TeacherID string `json:"teacher_id" example:"507f1f77bcf86cd799439011"`
}

type ProfileListResponse struct {
	Teachers []TeacherWithRating `json:"teachers"`
	Total    int                 `json:"total" example:"12"`
}

type ProfileDetailResponse struct {
	Teacher    Teacher `json:"teacher"`
	AutoRating float64 `json:"auto_rating" example:"7.42"`
	Feedback   string  `json:"feedback"`
}

type ProfileDeletedResponse struct {
	Message string  `json:"message" example:"Faculty profile deleted successfully"`
	Teacher Teacher `json:"teacher"`
}

type RatingSavedResponse struct {
	Message     string  `json:"message" example:"Rating saved successfully"`
	AdminRating float64 `json:"admin_rating" example:"8"`
	FinalRating float64 `json:"final_rating" example:"7.66"`
}

type DepartmentFeedbackResponse struct {
	Message    string `json:"message" example:"Feedback generated successfully"`
	Department string `json:"department" example:"SOC"`
	Feedback   string `json:"feedback"`
}

type ComparisonDashboardResponse struct {
	DepartmentStats map[string]DepartmentStats `json:"department_stats"`
	Strengths       []string                   `json:"strengths"`
	Weaknesses      []string                   `json:"weaknesses"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Faculty profile not found"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Invalid or expired token"`
}
