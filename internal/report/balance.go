// Package report 实现各报表页的纯聚合逻辑：账户总览、余额快照、收支汇总、工时统计。
// 这里只做内存里的分组求和，不碰数据库；坏数据一律按零值处理，不报错。
package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jack-li-codes/family-finance-app/internal/models"

	"github.com/shopspring/decimal"
)

// UnassignedKey 没有挂账户的交易归到这个桶
const UnassignedKey = "未分配账户"

// MonthBucket 一个账户某个月的收支分桶。
// 金额全部按原始正负累加：收入为正、支出为负（约定，不强制）。
type MonthBucket struct {
	Income   []models.Transaction `json:"income"`
	Expense  []models.Transaction `json:"expense"`
	Transfer []models.Transaction `json:"transfer"`

	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	PrevBalance  decimal.Decimal `json:"prev_balance"` // 上月末余额（含初始余额）
	Net          decimal.Decimal `json:"net"`          // 净额 = 收入 + 支出
}

// NextBalance 下月余额 = 上月余额 + 净额（派生值，不落库）
func (b *MonthBucket) NextBalance() decimal.Decimal {
	return b.PrevBalance.Add(b.Net)
}

// AccountSection 账户总览里一个账户的全部月份数据
type AccountSection struct {
	Account   models.Account          `json:"account"`
	Months    map[string]*MonthBucket `json:"months"`     // YYYY-MM，没有交易的月份不出现
	MonthKeys []string                `json:"month_keys"` // 递增排序

	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalNet     decimal.Decimal `json:"total_net"`
}

// Overview 把全量交易按 账户 → 月份 分组，并算出各月余额。
// 返回值按账户名排序（未分配账户排最后）。
func Overview(accounts []models.Account, txs []models.Transaction) []*AccountSection {
	accMap := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		accMap[strconv.FormatUint(uint64(a.ID), 10)] = a
	}

	// 按账户分桶
	byAcc := make(map[string][]models.Transaction)
	for _, t := range txs {
		key := UnassignedKey
		if t.AccountID != nil {
			key = strconv.FormatUint(uint64(*t.AccountID), 10)
		}
		byAcc[key] = append(byAcc[key], t)
	}

	var sections []*AccountSection
	for key, list := range byAcc {
		account, ok := accMap[key]
		if !ok {
			// 未分配或账户已被删除：给个只有名字的壳
			account = models.Account{Name: key}
			if key == UnassignedKey {
				account.Name = UnassignedKey
			}
		}

		// ISO 日期字符串的字典序就是时间序
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

		monthSet := make(map[string]bool)
		for _, t := range list {
			if m := t.Month(); m != "" {
				monthSet[m] = true
			}
		}
		monthKeys := make([]string, 0, len(monthSet))
		for m := range monthSet {
			monthKeys = append(monthKeys, m)
		}
		sort.Strings(monthKeys)

		months := make(map[string]*MonthBucket, len(monthKeys))
		for _, m := range monthKeys {
			bucket := &MonthBucket{
				Income:   []models.Transaction{},
				Expense:  []models.Transaction{},
				Transfer: []models.Transaction{},
			}
			for _, t := range list {
				if t.Month() != m {
					continue
				}
				switch {
				case t.IsTransfer():
					bucket.Transfer = append(bucket.Transfer, t)
				case t.IsIncome():
					bucket.Income = append(bucket.Income, t)
				case t.IsExpense():
					bucket.Expense = append(bucket.Expense, t)
				}
			}

			for _, t := range bucket.Income {
				bucket.IncomeTotal = bucket.IncomeTotal.Add(t.Amount)
			}
			for _, t := range bucket.Expense {
				bucket.ExpenseTotal = bucket.ExpenseTotal.Add(t.Amount) // 支出本身是负
			}
			bucket.PrevBalance = balanceUntilMonthEnd(account, list, prevMonth(m))
			bucket.Net = bucket.IncomeTotal.Add(bucket.ExpenseTotal)
			months[m] = bucket
		}

		sec := &AccountSection{
			Account:   account,
			Months:    months,
			MonthKeys: monthKeys,
		}
		for _, b := range months {
			sec.TotalIncome = sec.TotalIncome.Add(b.IncomeTotal)
			sec.TotalExpense = sec.TotalExpense.Add(b.ExpenseTotal)
		}
		sec.TotalNet = sec.TotalIncome.Add(sec.TotalExpense)
		sections = append(sections, sec)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i].Account, sections[j].Account
		if (a.Name == UnassignedKey) != (b.Name == UnassignedKey) {
			return b.Name == UnassignedKey
		}
		return a.Name < b.Name
	})
	return sections
}

// balanceUntilMonthEnd 截至 targetYM 月末的余额：
// 初始余额 + 初始日期之后、目标月（含）之前所有非转账交易的金额。
// 初始日期之前的交易完全不计，而不是按零处理。
func balanceUntilMonthEnd(account models.Account, sorted []models.Transaction, targetYM string) decimal.Decimal {
	bal := account.InitialBalance
	for _, t := range sorted {
		if account.InitialDate != nil && *account.InitialDate != "" && t.Date < *account.InitialDate {
			continue
		}
		m := t.Month()
		if m == "" || m > targetYM {
			break
		}
		if t.IsTransfer() {
			continue
		}
		bal = bal.Add(t.Amount)
	}
	return bal
}

// prevMonth 返回上一个月的 YYYY-MM
func prevMonth(yyyyMM string) string {
	var y, m int
	if _, err := fmt.Sscanf(yyyyMM, "%d-%d", &y, &m); err != nil {
		return ""
	}
	m--
	if m == 0 {
		y--
		m = 12
	}
	return fmt.Sprintf("%04d-%02d", y, m)
}

// BalanceRow 余额快照里的一行
type BalanceRow struct {
	Account        models.Account  `json:"account"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// CurrentBalance 当前余额：初始余额 + 初始日期之后该账户所有非转账交易金额。
func CurrentBalance(account models.Account, txs []models.Transaction) decimal.Decimal {
	bal := account.InitialBalance
	for _, t := range txs {
		if t.AccountID == nil || *t.AccountID != account.ID {
			continue
		}
		if account.InitialDate != nil && *account.InitialDate != "" && t.Date < *account.InitialDate {
			continue
		}
		if t.IsTransfer() {
			continue
		}
		bal = bal.Add(t.Amount)
	}
	return bal
}

// Snapshot 每个账户一行的余额快照
func Snapshot(accounts []models.Account, txs []models.Transaction) []BalanceRow {
	rows := make([]BalanceRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, BalanceRow{
			Account:        a,
			CurrentBalance: CurrentBalance(a, txs),
		})
	}
	return rows
}
