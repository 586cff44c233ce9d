package store

// Post is a single content record. Records are seed data: created once at
// startup and never mutated afterwards.
type Post struct {
	ID       int
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Date     string
	ReadTime string
	Category string
	Tags     []string
	Featured bool
	Gradient string
	Slug     string
}

// Store holds the immutable post collection in insertion order.
type Store struct {
	posts []Post
}

func New(posts []Post) *Store {
	return &Store{
		posts: posts,
	}
}

// NewSeeded returns a store populated with the built-in seed posts.
func NewSeeded() *Store {
	return New(seedPosts())
}

// ListAll returns all posts in insertion order. The returned slice is a copy,
// callers may not reach the store's backing array through it.
func (s *Store) ListAll() []Post {
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

func (s *Store) Len() int {
	return len(s.posts)
}

func seedPosts() []Post {
	return []Post{
		{
			ID:       1,
			Title:    "Building AI-Powered Web Applications",
			Excerpt:  "Exploring the integration of machine learning models into modern web frameworks for enhanced user experiences.",
			Author:   "John Doe",
			Date:     "Dec 10, 2024",
			ReadTime: "5 min read",
			Category: "AI/ML",
			Tags:     []string{"AI", "Machine Learning", "Web Development", "React"},
			Featured: true,
			Gradient: "from-purple-400 to-pink-400",
			Slug:     "building-ai-powered-web-applications",
		},
		{
			ID:       2,
			Title:    "The Future of Accessible Design",
			Excerpt:  "How inclusive design principles are shaping the next generation of digital products and user interfaces.",
			Author:   "Jane Smith",
			Date:     "Nov 28, 2024",
			ReadTime: "7 min read",
			Category: "Design",
			Tags:     []string{"Accessibility", "UX Design", "Inclusive Design"},
			Featured: true,
			Gradient: "from-blue-400 to-cyan-400",
			Slug:     "future-of-accessible-design",
		},
		{
			ID:       3,
			Title:    "Optimizing React Performance",
			Excerpt:  "Advanced techniques for building lightning-fast React applications with modern optimization strategies.",
			Author:   "Mike Johnson",
			Date:     "Nov 15, 2024",
			ReadTime: "6 min read",
			Category: "Development",
			Tags:     []string{"React", "Performance", "Optimization", "JavaScript"},
			Gradient: "from-green-400 to-emerald-400",
			Slug:     "optimizing-react-performance",
		},
		{
			ID:       4,
			Title:    "Data Science in Practice",
			Excerpt:  "Real-world applications of data science techniques in solving complex business problems.",
			Author:   "Sarah Wilson",
			Date:     "Oct 30, 2024",
			ReadTime: "8 min read",
			Category: "Data Science",
			Tags:     []string{"Data Science", "Analytics", "Python", "Business Intelligence"},
			Gradient: "from-orange-400 to-red-400",
			Slug:     "data-science-in-practice",
		},
		{
			ID:       5,
			Title:    "Microservices Architecture Patterns",
			Excerpt:  "Best practices for designing scalable microservices systems with modern cloud technologies.",
			Author:   "David Brown",
			Date:     "Oct 15, 2024",
			ReadTime: "9 min read",
			Category: "Development",
			Tags:     []string{"Microservices", "Architecture", "Cloud", "DevOps"},
			Gradient: "from-indigo-400 to-purple-400",
			Slug:     "microservices-architecture-patterns",
		},
		{
			ID:       6,
			Title:    "Machine Learning Model Deployment",
			Excerpt:  "A comprehensive guide to deploying ML models in production environments with monitoring and scaling.",
			Author:   "Emily Davis",
			Date:     "Sep 28, 2024",
			ReadTime: "12 min read",
			Category: "AI/ML",
			Tags:     []string{"MLOps", "Deployment", "Monitoring", "Production"},
			Gradient: "from-teal-400 to-green-400",
			Slug:     "machine-learning-model-deployment",
		},
	}
}
