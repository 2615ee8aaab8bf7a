package requests

type JobSalary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type JobExperience struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type CreateJob struct {
	Title               string         `json:"title" validate:"required,max=100"`
	Company             string         `json:"company" validate:"required"`
	Department          string         `json:"department" validate:"required"`
	Description         string         `json:"description" validate:"required,max=1000"`
	DetailedDescription string         `json:"detailedDescription" validate:"max=5000"`
	Responsibilities    []string       `json:"responsibilities"`
	Qualifications      []string       `json:"qualifications"`
	Benefits            []string       `json:"benefits"`
	Location            string         `json:"location"`
	WorkMode            string         `json:"workMode" validate:"omitempty,oneof=On-site Remote Hybrid"`
	Salary              *JobSalary     `json:"salary"`
	ExperienceRequired  *JobExperience `json:"experienceRequired"`
	Skills              []string       `json:"skills"`
	EmploymentType      string         `json:"employmentType" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ApplicationDeadline string         `json:"applicationDeadline"`
	ContactEmail        string         `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone        string         `json:"contactPhone"`
	CompanyWebsite      string         `json:"companyWebsite" validate:"omitempty,url"`
	NumberOfOpenings    int            `json:"numberOfOpenings" validate:"omitempty,gte=1"`
	Education           string         `json:"education"`
}

// UpdateJob reuses the create shape; empty fields are left untouched.
type UpdateJob = CreateJob

// ListJobs carries query-string filters and pagination.
type ListJobs struct {
	Department     string
	Company        string
	EmploymentType string
	Search         string
	Page           int
	Limit          int
}
