package model

type Disease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// DiseasePage is one page of the server-side filtered disease listing.
type DiseasePage struct {
	Diseases   []Disease `json:"diseases"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

type Target struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        TargetType `json:"type"`
	Description string     `json:"description"`
}

type TargetType string

const (
	TargetProtein  TargetType = "protein"
	TargetEnzyme   TargetType = "enzyme"
	TargetReceptor TargetType = "receptor"
)

type Pathway struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
