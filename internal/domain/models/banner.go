package models

// BannerContent is one entry of the scrolling promo banner. Public rendering
// shows active rows in ascending display_order; the admin list shows everything.
type BannerContent struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}
