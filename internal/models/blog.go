package models

// Blog is a post. AuthorID is nil for legacy rows written before ownership was tracked.
type Blog struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	AuthorID *int      `json:"author_id"`
	Comments []Comment `json:"comments"`
}
