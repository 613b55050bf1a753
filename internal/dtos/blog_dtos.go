package dtos

// ----------------------
// Blog posts
// ----------------------

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type DeletePostResponse struct {
	Message string `json:"message"`
}
