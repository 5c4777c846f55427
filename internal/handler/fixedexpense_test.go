package handler

import (
	"testing"

	"github.com/jack-li-codes/family-finance-app/internal/models"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// TestTotalsByCurrency_InactiveExcluded 停用的条目不计入合计
func TestTotalsByCurrency_InactiveExcluded(t *testing.T) {
	expenses := []models.FixedExpense{
		{Name: "房贷", Amount: amt("4482.28"), Currency: "CAD", IsActive: true},
		{Name: "宽带", Amount: amt("74"), Currency: "CAD", IsActive: true},
		{Name: "健身房", Amount: amt("60"), Currency: "CAD", IsActive: false},
	}

	totals := TotalsByCurrency(expenses)
	if !totals["CAD"].Equal(amt("4556.28")) {
		t.Errorf("totals[CAD] = %s, want 4556.28", totals["CAD"])
	}
}

// TestTotalsByCurrency_PerCurrency 不同币种分开合计
func TestTotalsByCurrency_PerCurrency(t *testing.T) {
	expenses := []models.FixedExpense{
		{Name: "房租", Amount: amt("1500"), Currency: "CAD", IsActive: true},
		{Name: "订阅", Amount: amt("9.99"), Currency: "USD", IsActive: true},
	}

	totals := TotalsByCurrency(expenses)
	if len(totals) != 2 {
		t.Fatalf("totals len = %d, want 2", len(totals))
	}
	if !totals["CAD"].Equal(amt("1500")) {
		t.Errorf("totals[CAD] = %s, want 1500", totals["CAD"])
	}
	if !totals["USD"].Equal(amt("9.99")) {
		t.Errorf("totals[USD] = %s, want 9.99", totals["USD"])
	}
}

// TestTotalsByCurrency_Empty 没有条目时返回空表而不是 nil 崩溃
func TestTotalsByCurrency_Empty(t *testing.T) {
	totals := TotalsByCurrency(nil)
	if len(totals) != 0 {
		t.Errorf("totals len = %d, want 0", len(totals))
	}
}

// TestIsDemoUser 演示账号判断不区分大小写
func TestIsDemoUser(t *testing.T) {
	h := &FixedExpenseHandler{DemoUsers: []string{"demo1", "demo2"}}

	if !h.isDemoUser("demo1") || !h.isDemoUser("DEMO2") {
		t.Error("demo1/DEMO2 should be demo users")
	}
	if h.isDemoUser("alice") {
		t.Error("alice should not be a demo user")
	}
}
