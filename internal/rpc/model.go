package rpc

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
	Slug     string   `json:"slug,omitempty"`
}

type PostsResponse struct {
	Posts       []Post `json:"posts"`
	TotalCount  int    `json:"totalCount"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

type PostsFilter struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//limit=4 items per page
	Limit *int `json:"limit,omitempty"`
	//category optional category filter, "all" disables it
	Category *string `json:"category,omitempty"`
	//featured optional featured filter
	Featured *bool `json:"featured,omitempty"`
}

type PostByIDRequest struct {
	//id post numeric ID
	ID int `json:"id"`
}

type FeaturedRequest struct {
	//limit=2 maximum number of posts
	Limit *int `json:"limit,omitempty"`
}

type SearchRequest struct {
	//query search string, three characters minimum
	Query string `json:"query"`
}
