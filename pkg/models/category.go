package models

type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// AlphabetGroup is one letter bucket of the server-computed category
// index.
type AlphabetGroup struct {
	Letter     string     `json:"letter"`
	Categories []Category `json:"categories"`
}

// CategorizedGroups is a read-only server-computed projection: categories
// bucketed alphabetically plus an "other" bucket. The client consumes it
// as-is and never derives it locally.
type CategorizedGroups struct {
	Groups []AlphabetGroup `json:"groups"`
	Other  []Category      `json:"other"`
}
