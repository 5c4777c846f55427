package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 交易类型历史数据用中文存储，后来也接受英文写法，两种都要认。
const (
	TypeIncome   = "收入"
	TypeExpense  = "支出"
	TypeTransfer = "转账"
)

// Transaction 一笔收支记录。
// Amount 的正负号即收支方向（收入为正、支出为负），这是录入约定而非强制校验，
// 所有统计直接按原始正负累加，绝不按 Type 重新推导符号。
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	AccountID   *uint           `gorm:"index" json:"account_id"` // 可为空：未分配账户
	Date        string          `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Type        string          `gorm:"size:16;not null" json:"type"`
	Category    string          `gorm:"size:32" json:"category"`
	Subcategory string          `gorm:"size:32" json:"subcategory"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Currency    string          `gorm:"size:8;default:CAD" json:"currency"`
	Note        string          `gorm:"size:255" json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsIncome 中英文写法都算收入
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome || strings.EqualFold(t.Type, "income")
}

// IsExpense 中英文写法都算支出
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense || strings.EqualFold(t.Type, "expense")
}

// IsTransfer 转账只展示、不参与任何汇总
func (t *Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer || strings.EqualFold(t.Type, "transfer")
}

// Month 返回 YYYY-MM；日期为空时返回空串
func (t *Transaction) Month() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}
