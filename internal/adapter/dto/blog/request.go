package blog

// GenerateRequest is the body of POST /v1/blogs/generate
type GenerateRequest struct {
	Link string `json:"link" validate:"required,url,max=500" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}
