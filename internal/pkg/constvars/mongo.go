package constvars

const (
	MongoCollectionAppointments      = "appointments"
	MongoCollectionJobs              = "jobs"
	MongoCollectionCourses           = "courses"
	MongoCollectionUsers             = "users"
	MongoCollectionSavedJobs         = "savedjobs"
	MongoCollectionCourseEnrollments = "courseenrollments"
)
