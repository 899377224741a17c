package domain

// Link is an outbound link shown at the bottom of a project card.
// Icon is a CSS class list (e.g. "fab fa-github").
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Project is one portfolio project as published in projects.json.
type Project struct {
	ID           RecordID `json:"id"`
	Title        string   `json:"title"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	Status       string   `json:"status"` // shown as the card badge
	Duration     string   `json:"duration"`
	TeamSize     int      `json:"teamSize,omitempty"` // 0 means absent
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	Links        []Link   `json:"links"`
}

// HasTeam reports whether the team-size line should be shown.
// Zero and absent are treated the same.
func (p Project) HasTeam() bool {
	return p.TeamSize != 0
}

// ProjectList is the top-level shape of projects.json.
type ProjectList struct {
	Projects *[]Project `json:"projects"`
}
