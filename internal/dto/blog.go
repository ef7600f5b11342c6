package dto

// 建立文章
type CreateBlogDto struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug,omitempty"` // 省略時由 title 自動產生
	Excerpt   string   `json:"excerpt,omitempty"`
	Content   string   `json:"content" binding:"required"`
	Image     string   `json:"image,omitempty"`
	Published bool     `json:"published"`
	Category  string   `json:"category,omitempty"` // Category ObjectID hex
	Tags      []string `json:"tags,omitempty"`     // Tag ObjectID hex
}

// 更新文章
type UpdateBlogDto struct {
	Title     *string   `json:"title,omitempty"`
	Slug      *string   `json:"slug,omitempty"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Image     *string   `json:"image,omitempty"`
	Published *bool     `json:"published,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}
