package models

// ProductListResponse is the public list-all envelope.
type ProductListResponse struct {
	Docs  []Product `json:"docs"`
	Total int       `json:"total"`
}

// CategoryListResponse is the public list-by-category envelope.
type CategoryListResponse struct {
	Type  string    `json:"type"`
	Docs  []Product `json:"docs"`
	Total int       `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
