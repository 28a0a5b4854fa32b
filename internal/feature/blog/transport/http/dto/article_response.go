package dto

import "time"

// ArticleListItem is one element of the GET /blogs response.
type ArticleListItem struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
}

// ArticleDetail is the GET /blogs/:slug response.
type ArticleDetail struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
}
