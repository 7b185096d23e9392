package ai

// JobRecord captures the structured output from the AI model for one job
// posting. Every field is nullable: postings routinely omit dates and
// sometimes even the location, and a missing field must stay distinguishable
// from an extracted one.
type JobRecord struct {
	// JobTitle is the position name as written in the posting.
	JobTitle *string `json:"job_title,omitempty"`

	// Location is the work city, ideally "City, ST".
	Location *string `json:"location,omitempty"`

	// StartMonth/StartYear and EndMonth/EndYear bound the internship or
	// contract window. Months are 1-12.
	StartMonth *int `json:"start_month,omitempty"`
	StartYear  *int `json:"start_year,omitempty"`
	EndMonth   *int `json:"end_month,omitempty"`
	EndYear    *int `json:"end_year,omitempty"`
}
