package dto

// 建立商店；subdomain 省略時由 name slugify 產生
type CreateShopDto struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain,omitempty"`
}

// 更新商店
type UpdateShopDto struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
