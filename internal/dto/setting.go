package dto

// 寫入設定（key 不存在時建立）
type UpsertSettingDto struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
