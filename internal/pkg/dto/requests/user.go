package requests

type UpsertProfile struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio" validate:"max=500"`
}

type SaveJob struct {
	Email string `json:"email" validate:"required,email"`
	JobID string `json:"jobId" validate:"required"`
}

type EnrollCourse struct {
	Email    string `json:"email" validate:"required,email"`
	CourseID string `json:"courseId" validate:"required"`
}

type UpdateCourseProgress struct {
	Progress *int `json:"progress" validate:"required,gte=0,lte=100"`
}
