package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientTooManyRequests               = "Too many requests. Please try again shortly."

	ErrClientSlotAlreadyBooked        = "This time slot is already booked. Please select another time."
	ErrClientAppointmentNotFound      = "Appointment not found"
	ErrClientConfirmationNotFound     = "Appointment not found with this confirmation number"
	ErrClientInvalidAppointmentStatus = "Valid status is required (pending, confirmed, completed, cancelled)"

	ErrClientJobNotFound      = "Job not found"
	ErrClientJobAlreadySaved  = "Job already saved"
	ErrClientSavedJobNotFound = "Saved job not found"

	ErrClientCourseNotFound     = "Course not found"
	ErrClientAlreadyEnrolled    = "Already enrolled in this course"
	ErrClientEnrollmentNotFound = "Enrollment not found"
	ErrClientInvalidProgress    = "Valid progress value (0-100) is required"

	ErrClientUserNotFound        = "User not found"
	ErrClientProfileFieldMissing = "Email, first name, and last name are required"

	ErrClientYoutubeFetchFailed = "Failed to fetch YouTube videos"
)

// Dev messages, logged but never returned to clients in production
const (
	ErrDevValidationFailed  = "request validation failed"
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "failed to parse JSON request body"
	ErrDevCannotParseDate   = "failed to parse date parameter"
	ErrDevCannotMarshalJSON = "failed to marshal value to JSON"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "mongodb failed to count documents"
	ErrDevDBFailedToAggregate        = "mongodb failed to run aggregation"
	ErrDevDBStringNotObjectID        = "string is not a valid mongodb object id"
	ErrDevDBDuplicateSlotKey         = "unique slot index rejected write, slot already occupied"

	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"
	ErrDevRedisSetNX      = "redis failed to set key with NX"
	ErrDevRedisUnlock     = "redis failed to release lock"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"

	ErrDevSlotOccupied              = "requested slot already has an active appointment"
	ErrDevSlotLockContended         = "slot lock held by a concurrent booking attempt"
	ErrDevConfirmationCodeExhausted = "could not generate a unique confirmation code"
	ErrDevAppointmentNotExists      = "appointment does not exist"
	ErrDevInvalidStatusValue        = "status value outside the enumerated set"

	ErrDevJobNotExists        = "job does not exist"
	ErrDevCourseNotExists     = "course does not exist"
	ErrDevUserNotExists       = "user does not exist"
	ErrDevSavedJobNotExists   = "saved job does not exist"
	ErrDevEnrollmentNotExists = "enrollment does not exist"
	ErrDevDuplicateSavedJob   = "saved job already exists for this user and job"
	ErrDevDuplicateEnrollment = "enrollment already exists for this user and course"
	ErrDevProgressOutOfRange  = "progress must be between 0 and 100"

	ErrDevCreateHTTPRequest = "failed to create outbound HTTP request"
	ErrDevSendHTTPRequest   = "failed to send outbound HTTP request"
	ErrDevDecodeFeedXML     = "failed to decode RSS feed XML"

	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing request"
	ErrDevServerProcess          = "server failed to process request"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"time_slot":        "must be one of the bookable time slots",
	"service_category": "must be either 'legal' or 'career'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
