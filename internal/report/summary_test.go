package report

import (
	"testing"

	"github.com/jack-li-codes/family-finance-app/internal/models"
)

// TestSummarize_PercentOnlyReportCurrency 合计与占比只统计报表币种，其他币种仅展示明细
func TestSummarize_PercentOnlyReportCurrency(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2024-01-05", Type: models.TypeExpense, Category: "食物", Currency: "CAD", Amount: d("-100")},
		{Date: "2024-01-06", Type: models.TypeExpense, Category: "车辆", Currency: "CAD", Amount: d("-300")},
		{Date: "2024-01-07", Type: models.TypeExpense, Category: "食物", Currency: "USD", Amount: d("-50")},
	}

	result := Summarize(txs, "CAD", nil)
	if len(result) != 1 {
		t.Fatalf("Summarize() months = %d, want 1", len(result))
	}
	expense := result[0].Types[0]
	if expense.Type != models.TypeExpense {
		t.Fatalf("type = %q, want 支出", expense.Type)
	}
	if !expense.Total.Equal(d("-400")) {
		t.Errorf("expense.Total = %s, want -400（USD 不计入）", expense.Total)
	}

	for _, cb := range expense.Categories {
		switch cb.Category {
		case "食物":
			// USD 的那笔进明细但不进小计
			if len(cb.Transactions) != 2 {
				t.Errorf("食物明细 = %d, want 2", len(cb.Transactions))
			}
			if !cb.Total.Equal(d("-100")) {
				t.Errorf("食物小计 = %s, want -100", cb.Total)
			}
			if cb.Percent == nil || *cb.Percent != "25.00" {
				t.Errorf("食物占比 = %v, want 25.00", cb.Percent)
			}
		case "车辆":
			if cb.Percent == nil || *cb.Percent != "75.00" {
				t.Errorf("车辆占比 = %v, want 75.00", cb.Percent)
			}
		}
	}
}

// TestSummarize_ExcludedCategoryNoPercent 排除分类照常展示明细，但不进合计也没有占比
func TestSummarize_ExcludedCategoryNoPercent(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2024-01-05", Type: models.TypeExpense, Category: "食物", Currency: "CAD", Amount: d("-100")},
		{Date: "2024-01-06", Type: models.TypeExpense, Category: "工程", Currency: "CAD", Amount: d("-900")},
	}

	result := Summarize(txs, "CAD", []string{"转账", "工程"})
	expense := result[0].Types[0]

	if !expense.Total.Equal(d("-100")) {
		t.Errorf("expense.Total = %s, want -100（工程被排除）", expense.Total)
	}
	for _, cb := range expense.Categories {
		switch cb.Category {
		case "工程":
			if cb.Percent != nil {
				t.Errorf("工程占比 = %q, want nil", *cb.Percent)
			}
			if len(cb.Transactions) != 1 {
				t.Errorf("工程明细 = %d, want 1", len(cb.Transactions))
			}
		case "食物":
			if cb.Percent == nil || *cb.Percent != "100.00" {
				t.Errorf("食物占比 = %v, want 100.00", cb.Percent)
			}
		}
	}
}

// TestSummarize_ZeroBaseNoPercent 分母为零时不给出占比，而不是 NaN
func TestSummarize_ZeroBaseNoPercent(t *testing.T) {
	txs := []models.Transaction{
		// 只有非报表币种，小计全为零
		{Date: "2024-01-05", Type: models.TypeExpense, Category: "食物", Currency: "USD", Amount: d("-100")},
	}

	result := Summarize(txs, "CAD", nil)
	expense := result[0].Types[0]
	for _, cb := range expense.Categories {
		if cb.Percent != nil {
			t.Errorf("占比 = %q, want nil（分母为零）", *cb.Percent)
		}
	}
}

// TestSummarize_TransferSkipped 转账类型整行不参与汇总
func TestSummarize_TransferSkipped(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2024-01-05", Type: models.TypeTransfer, Category: "内部转账", Currency: "CAD", Amount: d("-500")},
	}

	result := Summarize(txs, "CAD", nil)
	if len(result) != 0 {
		t.Errorf("Summarize() months = %d, want 0", len(result))
	}
}

// TestSummarize_MonthOrderNewestFirst 月份按最新在前排序，类型按收入、支出排序
func TestSummarize_MonthOrderNewestFirst(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2024-01-05", Type: models.TypeExpense, Category: "食物", Currency: "CAD", Amount: d("-10")},
		{Date: "2024-03-05", Type: models.TypeIncome, Category: "工资", Currency: "CAD", Amount: d("100")},
		{Date: "2024-03-06", Type: models.TypeExpense, Category: "食物", Currency: "CAD", Amount: d("-20")},
	}

	result := Summarize(txs, "CAD", nil)
	if len(result) != 2 {
		t.Fatalf("months = %d, want 2", len(result))
	}
	if result[0].Month != "2024-03" || result[1].Month != "2024-01" {
		t.Errorf("month order = [%s %s], want [2024-03 2024-01]", result[0].Month, result[1].Month)
	}
	if result[0].Types[0].Type != models.TypeIncome {
		t.Errorf("first type = %q, want 收入", result[0].Types[0].Type)
	}
}

// TestSummarize_EmptyCategoryFallback 空分类归入“未分类”
func TestSummarize_EmptyCategoryFallback(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2024-01-05", Type: models.TypeExpense, Category: "", Currency: "CAD", Amount: d("-10")},
	}

	result := Summarize(txs, "CAD", nil)
	cb := result[0].Types[0].Categories[0]
	if cb.Category != "未分类" {
		t.Errorf("category = %q, want 未分类", cb.Category)
	}
}
