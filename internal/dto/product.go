package dto

// 建立商品（租戶端）
type CreateProductDto struct {
	Name        string `json:"name" binding:"required"`
	SKU         string `json:"sku" binding:"required"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       int64  `json:"price" binding:"required,gte=0"` // 最小貨幣單位（分）
	Currency    string `json:"currency,omitempty"`
	Stock       int64  `json:"stock" binding:"gte=0"`
	Published   bool   `json:"published"`
}

// 更新商品
type UpdateProductDto struct {
	Name        *string `json:"name,omitempty"`
	SKU         *string `json:"sku,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Price       *int64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Currency    *string `json:"currency,omitempty"`
	Stock       *int64  `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Published   *bool   `json:"published,omitempty"`
}
