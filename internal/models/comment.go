package models

type Comment struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	BlogID   int    `json:"blog_id"`
	AuthorID *int   `json:"author_id"`
}
