package rest

type Post struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Author   string   `json:"author,omitempty"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	Gradient string   `json:"gradient,omitempty"`
	Slug     string   `json:"slug,omitempty"`
}

type PostsResponse struct {
	Posts       []Post `json:"posts"`
	TotalCount  int    `json:"totalCount"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}
