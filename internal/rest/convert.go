package rest

import "github.com/blogfolio/blogfolio/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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
		Gradient: p.Gradient,
		Slug:     p.Slug,
	}
}

func NewPostsResponse(r *blog.PostsResponse) PostsResponse {
	return PostsResponse{
		Posts:       Map(r.Posts, NewPost),
		TotalCount:  r.TotalCount,
		TotalPages:  r.TotalPages,
		CurrentPage: r.CurrentPage,
	}
}
