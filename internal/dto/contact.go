package dto

import "storefront/internal/database/mongodb/model"

// 聯絡表單（公開端）
type CreateContactDto struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// 更新聯絡狀態（管理端）
type UpdateContactStatusDto struct {
	Status model.ContactStatus `json:"status" binding:"required,oneof=new read replied"`
}
