package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedExpense 每月固定花销（房租、水电等），与流水记录分开维护。
// IsActive=false 表示软删除：不计入当月固定花销合计，但管理列表仍可见、可恢复。
type FixedExpense struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index:idx_fixed_user_name,unique;not null" json:"user_id"`
	Name      string          `gorm:"size:64;index:idx_fixed_user_name,unique;not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Currency  string          `gorm:"size:8;default:CAD" json:"currency"`
	Note      string          `gorm:"size:255" json:"note"`
	Icon      string          `gorm:"size:16" json:"icon"`
	SortOrder int             `gorm:"default:0" json:"sort_order"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
