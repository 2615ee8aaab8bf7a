package models

import "time"

type SalaryRange struct {
	Min      float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max      float64 `json:"max,omitempty" bson:"max,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

type ExperienceRange struct {
	Min int `json:"min,omitempty" bson:"min,omitempty"`
	Max int `json:"max,omitempty" bson:"max,omitempty"`
}

type Job struct {
	ID                  string           `json:"id" bson:"_id,omitempty"`
	Title               string           `json:"title" bson:"title"`
	Company             string           `json:"company" bson:"company"`
	Department          string           `json:"department" bson:"department"`
	Description         string           `json:"description" bson:"description"`
	DetailedDescription string           `json:"detailedDescription,omitempty" bson:"detailedDescription,omitempty"`
	Responsibilities    []string         `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
	Qualifications      []string         `json:"qualifications,omitempty" bson:"qualifications,omitempty"`
	Benefits            []string         `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Location            string           `json:"location,omitempty" bson:"location,omitempty"`
	WorkMode            string           `json:"workMode" bson:"workMode"`
	Salary              *SalaryRange     `json:"salary,omitempty" bson:"salary,omitempty"`
	ExperienceRequired  *ExperienceRange `json:"experienceRequired,omitempty" bson:"experienceRequired,omitempty"`
	Skills              []string         `json:"skills,omitempty" bson:"skills,omitempty"`
	EmploymentType      string           `json:"employmentType" bson:"employmentType"`
	IsActive            bool             `json:"isActive" bson:"isActive"`
	ApplicationDeadline *time.Time       `json:"applicationDeadline,omitempty" bson:"applicationDeadline,omitempty"`
	ContactEmail        string           `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone        string           `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	CompanyWebsite      string           `json:"companyWebsite,omitempty" bson:"companyWebsite,omitempty"`
	NumberOfOpenings    int              `json:"numberOfOpenings" bson:"numberOfOpenings"`
	Education           string           `json:"education,omitempty" bson:"education,omitempty"`

	TimeModel `bson:",inline"`
}
