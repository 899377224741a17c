package domain

// Course is one completed course as published in courses.json.
// Skills may be empty; every other field is expected but not enforced.
type Course struct {
	ID          RecordID `json:"id"`
	Title       string   `json:"title"`
	Platform    string   `json:"platform"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	CourseURL   string   `json:"courseUrl"`
}

// CourseList is the top-level shape of courses.json.
// A nil Courses means the field was absent (or null) in the document.
type CourseList struct {
	Courses *[]Course `json:"courses"`
}
