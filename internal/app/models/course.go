package models

type CourseModule struct {
	Title   string   `json:"title" bson:"title"`
	Lessons []string `json:"lessons,omitempty" bson:"lessons,omitempty"`
}

type CourseInstructor struct {
	Name     string `json:"name" bson:"name"`
	Title    string `json:"title,omitempty" bson:"title,omitempty"`
	Bio      string `json:"bio,omitempty" bson:"bio,omitempty"`
	Initials string `json:"initials,omitempty" bson:"initials,omitempty"`
}

type CoursePrice struct {
	Current  float64 `json:"current" bson:"current"`
	Original float64 `json:"original,omitempty" bson:"original,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

type Course struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	Title               string            `json:"title" bson:"title"`
	Description         string            `json:"description" bson:"description"`
	DetailedDescription string            `json:"detailedDescription,omitempty" bson:"detailedDescription,omitempty"`
	Image               string            `json:"image" bson:"image"`
	Duration            string            `json:"duration" bson:"duration"`
	Level               string            `json:"level" bson:"level"`
	Rating              float64           `json:"rating" bson:"rating"`
	Students            int               `json:"students" bson:"students"`
	Certified           bool              `json:"certified" bson:"certified"`
	Price               CoursePrice       `json:"price" bson:"price"`
	Discount            float64           `json:"discount,omitempty" bson:"discount,omitempty"`
	Features            []string          `json:"features,omitempty" bson:"features,omitempty"`
	Modules             []CourseModule    `json:"modules,omitempty" bson:"modules,omitempty"`
	Instructor          *CourseInstructor `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Category            string            `json:"category" bson:"category"`
	VideoHours          string            `json:"videoHours,omitempty" bson:"videoHours,omitempty"`
	Resources           int               `json:"resources" bson:"resources"`
	IsActive            bool              `json:"isActive" bson:"isActive"`

	TimeModel `bson:",inline"`
}
