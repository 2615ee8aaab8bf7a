package requests

type CourseModule struct {
	Title   string   `json:"title" validate:"required"`
	Lessons []string `json:"lessons"`
}

type CourseInstructor struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Initials string `json:"initials"`
}

type CoursePrice struct {
	Current  float64 `json:"current" validate:"gte=0"`
	Original float64 `json:"original"`
	Currency string  `json:"currency"`
}

type CreateCourse struct {
	Title               string             `json:"title" validate:"required,max=200"`
	Description         string             `json:"description" validate:"required,max=500"`
	DetailedDescription string             `json:"detailedDescription" validate:"max=2000"`
	Image               string             `json:"image" validate:"required"`
	Duration            string             `json:"duration" validate:"required"`
	Level               string             `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Rating              float64            `json:"rating" validate:"gte=0,lte=5"`
	Students            int                `json:"students" validate:"gte=0"`
	Certified           *bool              `json:"certified"`
	Price               CoursePrice        `json:"price"`
	Discount            float64            `json:"discount" validate:"gte=0,lte=100"`
	Features            []string           `json:"features"`
	Modules             []CourseModule     `json:"modules" validate:"dive"`
	Instructor          *CourseInstructor  `json:"instructor"`
	Category            string             `json:"category" validate:"required"`
	VideoHours          string             `json:"videoHours"`
	Resources           int                `json:"resources" validate:"gte=0"`
}

// UpdateCourse reuses the create shape; empty fields are left untouched.
type UpdateCourse = CreateCourse

// ListCourses carries query-string filters.
type ListCourses struct {
	Category string
	Level    string
}
