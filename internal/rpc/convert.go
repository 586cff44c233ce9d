package rpc

import "github.com/blogfolio/blogfolio/internal/blog"

func NewPost(p blog.Post) Post {
	return Post{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Author:   p.Author,
		Date:     p.Date,
		ReadTime: p.DisplayReadTime(),
		Category: p.Category,
		Tags:     p.Tags,
		Featured: p.Featured,
		Slug:     p.Slug,
	}
}

func NewPosts(list []blog.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(list[i])
	}
	return result
}

func NewPostsResponse(r *blog.PostsResponse) PostsResponse {
	return PostsResponse{
		Posts:       NewPosts(r.Posts),
		TotalCount:  r.TotalCount,
		TotalPages:  r.TotalPages,
		CurrentPage: r.CurrentPage,
	}
}
