package routes

const (
	// Health
	Health = "/health"

	// Auth
	Register = "/api/v1/register"
	Login    = "/api/v1/login"
	Logout   = "/api/v1/logout"

	// Blog posts
	Posts    = "/api/v1/posts"
	PostByID = "/api/v1/posts/{id:[0-9]+}"
	MyPosts  = "/api/v1/posts/mine"

	// Users
	Users    = "/api/v1/users"
	UserByID = "/api/v1/users/{id:[0-9]+}"
)
