package responses

type StatEntry struct {
	Total   int    `json:"total,omitempty"`
	Value   float64 `json:"value,omitempty"`
	Display string `json:"display"`
}

type HomepageStats struct {
	Jobs         StatEntry `json:"jobs"`
	Courses      StatEntry `json:"courses"`
	Rating       StatEntry `json:"rating"`
	SuccessRate  StatEntry `json:"successRate"`
	Students     StatEntry `json:"students"`
	Appointments StatEntry `json:"appointments"`
}
