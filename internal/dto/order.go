package dto

import "storefront/internal/database/mongodb/model"

type OrderItemDto struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// 建立訂單（租戶端）；金額由商品現價計算，不信任 client 傳入
type CreateOrderDto struct {
	CustomerID string         `json:"customerId" binding:"required"`
	Items      []OrderItemDto `json:"items" binding:"required,min=1,dive"`
}

// 更新訂單狀態
type UpdateOrderStatusDto struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=pending paid shipped completed cancelled"`
}
