package dto

import (
	"storefront/internal/core"
)

// 建立用戶（管理端）
type CreateUserDto struct {
	DisplayName string      `json:"displayName" binding:"required"` // 顯示名稱
	Email       string      `json:"email" binding:"required,email"` // 登入信箱
	Password    string      `json:"password" binding:"required,min=8"`
	Role        core.Role   `json:"role" binding:"required"`   // 角色
	Status      core.Status `json:"status" binding:"required"` // 狀態
}

// 更新用戶
type UpdateUserDto struct {
	DisplayName *string      `json:"displayName,omitempty"`
	Email       *string      `json:"email,omitempty" binding:"omitempty,email"`
	Role        *core.Role   `json:"role,omitempty"`
	Status      *core.Status `json:"status,omitempty"`
}

// 修改用戶狀態
type UpdateUserStatusDto struct {
	Status core.Status `json:"status" binding:"required"`
}

// 修改密碼
type ChangePasswordDto struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
