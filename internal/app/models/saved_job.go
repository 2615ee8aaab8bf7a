package models

type SavedJob struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	UserID string `json:"userId" bson:"userId"`
	JobID  string `json:"jobId" bson:"jobId"`

	TimeModel `bson:",inline"`
}
