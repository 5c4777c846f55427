package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 一个记账账户（银行卡、现金、信用卡等）
// InitialDate 为空时余额统计从第一笔交易算起；
// 不为空时早于该日期的交易完全不参与余额计算。
type Account struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"index;not null" json:"user_id"`
	Name           string          `gorm:"size:64;not null" json:"name"`
	Category       string          `gorm:"size:32" json:"category"`
	Owner          string          `gorm:"size:32" json:"owner"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,2)" json:"balance"`
	Currency       string          `gorm:"size:8;default:CAD" json:"currency"`
	CardNumber     string          `gorm:"size:32" json:"card_number"`
	Note           string          `gorm:"size:255" json:"note"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(20,2)" json:"initial_balance"`
	InitialDate    *string         `gorm:"size:10" json:"initial_date"` // YYYY-MM-DD
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
