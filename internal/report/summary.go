package report

import (
	"sort"

	"github.com/jack-li-codes/family-finance-app/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryBucket 一个月里某分类的明细和小计。
// 明细任何币种都收录；Total 和占比只统计报表币种。
type CategoryBucket struct {
	Category     string               `json:"category"`
	Transactions []models.Transaction `json:"transactions"`
	Total        decimal.Decimal      `json:"total"`
	// Percent 占该类型月度合计的百分比（两位小数）。
	// 分母为零或分类被排除时不给出，而不是 NaN/Inf。
	Percent *string `json:"percent,omitempty"`
}

// TypeBucket 一个月里收入或支出的全部分类
type TypeBucket struct {
	Type       string            `json:"type"` // 收入 / 支出
	Total      decimal.Decimal   `json:"total"`
	Categories []*CategoryBucket `json:"categories"`
}

// MonthSummary 一个月的汇总
type MonthSummary struct {
	Month string        `json:"month"` // YYYY-MM
	Types []*TypeBucket `json:"types"`
}

// Summarize 按 月份 → 类型 → 分类 汇总交易。
// 只有收入/支出两种类型参与（转账类型的行整个跳过）；
// Total 与占比分母仅统计 currency 币种，且跳过 excluded 里的分类
// （这些分类照常展示明细，只是不进合计）。
func Summarize(txs []models.Transaction, currency string, excluded []string) []*MonthSummary {
	excludedSet := make(map[string]bool, len(excluded))
	for _, c := range excluded {
		excludedSet[c] = true
	}

	type catKey struct{ month, typ, cat string }
	catBuckets := make(map[catKey]*CategoryBucket)
	typeOrder := []string{models.TypeIncome, models.TypeExpense}

	for _, t := range txs {
		month := t.Month()
		if month == "" {
			continue
		}
		var typ string
		switch {
		case t.IsIncome():
			typ = models.TypeIncome
		case t.IsExpense():
			typ = models.TypeExpense
		default:
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = "未分类"
		}
		key := catKey{month, typ, cat}
		cb, ok := catBuckets[key]
		if !ok {
			cb = &CategoryBucket{Category: cat}
			catBuckets[key] = cb
		}
		cb.Transactions = append(cb.Transactions, t)
		if t.Currency == currency {
			cb.Total = cb.Total.Add(t.Amount)
		}
	}

	// 组装 月份 → 类型 → 分类 层级
	monthMap := make(map[string]map[string][]*CategoryBucket)
	for key, cb := range catBuckets {
		tm, ok := monthMap[key.month]
		if !ok {
			tm = make(map[string][]*CategoryBucket)
			monthMap[key.month] = tm
		}
		tm[key.typ] = append(tm[key.typ], cb)
	}

	months := make([]string, 0, len(monthMap))
	for m := range monthMap {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months))) // 最新月份在前

	hundred := decimal.NewFromInt(100)
	var result []*MonthSummary
	for _, m := range months {
		ms := &MonthSummary{Month: m}
		for _, typ := range typeOrder {
			cats := monthMap[m][typ]
			if len(cats) == 0 {
				continue
			}
			sort.SliceStable(cats, func(i, j int) bool { return cats[i].Category < cats[j].Category })

			tb := &TypeBucket{Type: typ, Categories: cats}
			// 占比分母：排除分类之外、报表币种的分类小计之和
			var base decimal.Decimal
			for _, cb := range cats {
				if excludedSet[cb.Category] {
					continue
				}
				base = base.Add(cb.Total)
				tb.Total = tb.Total.Add(cb.Total)
			}
			for _, cb := range cats {
				if excludedSet[cb.Category] || base.IsZero() {
					continue
				}
				p := cb.Total.Div(base).Mul(hundred).Round(2).StringFixed(2)
				cb.Percent = &p
			}
			ms.Types = append(ms.Types, tb)
		}
		result = append(result, ms)
	}
	return result
}
