package dto

// 建立標籤
type CreateTagDto struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug,omitempty"`
}

// 更新標籤
type UpdateTagDto struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// 建立分類
type CreateCategoryDto struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// 更新分類
type UpdateCategoryDto struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}
