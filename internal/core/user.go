package core

type Role string

const (
	RoleAdmin    Role = "admin"    // 管理員：可編輯所有資源
	RoleEditor   Role = "editor"   // 可編輯內容，但不能做高權限操作
	RoleMerchant Role = "merchant" // 商店擁有者：可管理自己的商店
	RoleCustomer Role = "customer" // 一般使用者
)

type Status string

const (
	StatusActive    Status = "active"    // 正常可用
	StatusBlocked   Status = "blocked"   // 被封鎖（例如濫用）
	StatusSuspended Status = "suspended" // 暫停（違規調查中）
	StatusPending   Status = "pending"   // 尚未啟用（等待審核/激活）
	StatusDeleted   Status = "deleted"   // 已刪除（軟刪除）
)

// CanManage 回傳 actor 是否可操作 ownerID 所屬的資源。
// admin 全可；其餘角色僅能操作自己的資源。
func (r Role) CanManage(actorID, ownerID string) bool {
	if r == RoleAdmin {
		return true
	}
	return actorID != "" && actorID == ownerID
}
