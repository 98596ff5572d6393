package dto

type NotePayload struct {
	Title      string   `json:"title" binding:"required"`
	Category   string   `json:"category" binding:"omitempty,category"`
	Content    string   `json:"content" binding:"required"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
}

type NoteQuery struct {
	Search        string `form:"q"`
	FavoritesOnly bool   `form:"favorites"`
	Category      string `form:"category"`
}
