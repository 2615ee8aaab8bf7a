package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	AppointmentBookedSuccess        = "Appointment booked successfully! Your confirmation number is %s"
	AppointmentUpdatedSuccess       = "Appointment updated successfully"
	AppointmentStatusUpdatedSuccess = "Appointment status updated successfully"
	AppointmentCancelledSuccess     = "Appointment cancelled successfully"

	// Job messages
	JobCreatedSuccess = "Job created successfully"
	JobUpdatedSuccess = "Job updated successfully"
	JobDeletedSuccess = "Job deleted successfully"

	// Course messages
	CourseCreatedSuccess = "Course created successfully"
	CourseUpdatedSuccess = "Course updated successfully"
	CourseDeletedSuccess = "Course deleted successfully"

	// User messages
	ProfileCreatedSuccess  = "Profile created successfully"
	ProfileUpdatedSuccess  = "Profile updated successfully"
	UserDeletedSuccess     = "User deleted successfully"
	JobSavedSuccess        = "Job saved successfully"
	JobUnsavedSuccess      = "Job removed from saved list"
	CourseEnrolledSuccess  = "Successfully enrolled in course"
	ProgressUpdatedSuccess = "Progress updated successfully"
)
