package report

import (
	"testing"

	"github.com/jack-li-codes/family-finance-app/internal/models"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

// TestCurrentBalance_TransferExcluded 转账不改变余额
func TestCurrentBalance_TransferExcluded(t *testing.T) {
	acc := models.Account{ID: 1, InitialBalance: d("100")}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-15", Type: models.TypeIncome, Amount: d("100")},
		{AccountID: uintPtr(1), Date: "2024-02-03", Type: models.TypeExpense, Amount: d("-40")},
		{AccountID: uintPtr(1), Date: "2024-02-10", Type: models.TypeTransfer, Amount: d("-999")},
	}

	got := CurrentBalance(acc, txs)
	if !got.Equal(d("160")) {
		t.Errorf("CurrentBalance() = %s, want 160", got)
	}
}

// TestCurrentBalance_InitialDateCutoff 初始日期之前的交易完全不计
func TestCurrentBalance_InitialDateCutoff(t *testing.T) {
	acc := models.Account{ID: 1, InitialBalance: d("100"), InitialDate: strPtr("2024-01-10")}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-05", Type: models.TypeIncome, Amount: d("50")}, // 早于初始日期
		{AccountID: uintPtr(1), Date: "2024-01-10", Type: models.TypeIncome, Amount: d("30")}, // 等于初始日期，计入
		{AccountID: uintPtr(1), Date: "2024-01-15", Type: models.TypeExpense, Amount: d("-20")},
	}

	got := CurrentBalance(acc, txs)
	if !got.Equal(d("110")) {
		t.Errorf("CurrentBalance() = %s, want 110", got)
	}
}

// TestCurrentBalance_OtherAccountIgnored 别的账户的交易不掺和
func TestCurrentBalance_OtherAccountIgnored(t *testing.T) {
	acc := models.Account{ID: 1, InitialBalance: d("0")}
	txs := []models.Transaction{
		{AccountID: uintPtr(2), Date: "2024-01-15", Type: models.TypeIncome, Amount: d("100")},
		{AccountID: nil, Date: "2024-01-16", Type: models.TypeIncome, Amount: d("100")},
	}

	got := CurrentBalance(acc, txs)
	if !got.IsZero() {
		t.Errorf("CurrentBalance() = %s, want 0", got)
	}
}

// TestOverview_MonthChain 上月余额 + 净额 = 下月余额，且等于下个月的上月余额
func TestOverview_MonthChain(t *testing.T) {
	accounts := []models.Account{{ID: 1, Name: "主账户", InitialBalance: d("100")}}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-15", Type: models.TypeIncome, Amount: d("200")},
		{AccountID: uintPtr(1), Date: "2024-01-20", Type: models.TypeExpense, Amount: d("-50")},
		{AccountID: uintPtr(1), Date: "2024-02-05", Type: models.TypeExpense, Amount: d("-30")},
	}

	sections := Overview(accounts, txs)
	if len(sections) != 1 {
		t.Fatalf("Overview() sections = %d, want 1", len(sections))
	}
	sec := sections[0]

	jan, ok := sec.Months["2024-01"]
	if !ok {
		t.Fatal("Overview() missing month 2024-01")
	}
	if !jan.PrevBalance.Equal(d("100")) {
		t.Errorf("jan.PrevBalance = %s, want 100", jan.PrevBalance)
	}
	if !jan.Net.Equal(d("150")) {
		t.Errorf("jan.Net = %s, want 150", jan.Net)
	}
	if !jan.NextBalance().Equal(d("250")) {
		t.Errorf("jan.NextBalance() = %s, want 250", jan.NextBalance())
	}

	feb, ok := sec.Months["2024-02"]
	if !ok {
		t.Fatal("Overview() missing month 2024-02")
	}
	// 二月的上月余额必须等于一月的下月余额
	if !feb.PrevBalance.Equal(jan.NextBalance()) {
		t.Errorf("feb.PrevBalance = %s, want %s", feb.PrevBalance, jan.NextBalance())
	}
	if !feb.NextBalance().Equal(d("220")) {
		t.Errorf("feb.NextBalance() = %s, want 220", feb.NextBalance())
	}
}

// TestOverview_TransferShownButNotCounted 转账进明细分桶但不进任何汇总
func TestOverview_TransferShownButNotCounted(t *testing.T) {
	accounts := []models.Account{{ID: 1, Name: "主账户"}}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-10", Type: models.TypeIncome, Amount: d("100")},
		{AccountID: uintPtr(1), Date: "2024-01-12", Type: models.TypeTransfer, Amount: d("-500")},
	}

	sec := Overview(accounts, txs)[0]
	jan := sec.Months["2024-01"]

	if len(jan.Transfer) != 1 {
		t.Fatalf("jan.Transfer len = %d, want 1", len(jan.Transfer))
	}
	if !jan.Net.Equal(d("100")) {
		t.Errorf("jan.Net = %s, want 100（转账不计入）", jan.Net)
	}
	if !jan.NextBalance().Equal(d("100")) {
		t.Errorf("jan.NextBalance() = %s, want 100", jan.NextBalance())
	}
	if !sec.TotalNet.Equal(d("100")) {
		t.Errorf("sec.TotalNet = %s, want 100", sec.TotalNet)
	}
}

// TestOverview_EnglishTypeRecognized 英文类型写法一样参与分桶
func TestOverview_EnglishTypeRecognized(t *testing.T) {
	accounts := []models.Account{{ID: 1, Name: "主账户"}}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-10", Type: "income", Amount: d("100")},
		{AccountID: uintPtr(1), Date: "2024-01-11", Type: "EXPENSE", Amount: d("-30")},
		{AccountID: uintPtr(1), Date: "2024-01-12", Type: "Transfer", Amount: d("-5")},
	}

	jan := Overview(accounts, txs)[0].Months["2024-01"]
	if len(jan.Income) != 1 || len(jan.Expense) != 1 || len(jan.Transfer) != 1 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/1",
			len(jan.Income), len(jan.Expense), len(jan.Transfer))
	}
	if !jan.Net.Equal(d("70")) {
		t.Errorf("jan.Net = %s, want 70", jan.Net)
	}
}

// TestOverview_MonthGapAbsent 没有交易的月份不出现，也不补零
func TestOverview_MonthGapAbsent(t *testing.T) {
	accounts := []models.Account{{ID: 1, Name: "主账户"}}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-10", Type: models.TypeIncome, Amount: d("100")},
		{AccountID: uintPtr(1), Date: "2024-03-10", Type: models.TypeExpense, Amount: d("-20")},
	}

	sec := Overview(accounts, txs)[0]
	if len(sec.MonthKeys) != 2 || sec.MonthKeys[0] != "2024-01" || sec.MonthKeys[1] != "2024-03" {
		t.Fatalf("MonthKeys = %v, want [2024-01 2024-03]", sec.MonthKeys)
	}
	if _, ok := sec.Months["2024-02"]; ok {
		t.Error("month 2024-02 should be absent")
	}
	// 三月的上月余额跨过空档月，仍然承接一月的结果
	mar := sec.Months["2024-03"]
	if !mar.PrevBalance.Equal(d("100")) {
		t.Errorf("mar.PrevBalance = %s, want 100", mar.PrevBalance)
	}
}

// TestOverview_UnassignedBucketLast 未分配账户单独成桶并排在最后
func TestOverview_UnassignedBucketLast(t *testing.T) {
	accounts := []models.Account{{ID: 1, Name: "主账户"}}
	txs := []models.Transaction{
		{AccountID: uintPtr(1), Date: "2024-01-10", Type: models.TypeIncome, Amount: d("100")},
		{AccountID: nil, Date: "2024-01-11", Type: models.TypeExpense, Amount: d("-10")},
	}

	sections := Overview(accounts, txs)
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}
	if sections[1].Account.Name != UnassignedKey {
		t.Errorf("last section = %q, want %q", sections[1].Account.Name, UnassignedKey)
	}
}

// TestSnapshot_OneRowPerAccount 快照每个账户一行
func TestSnapshot_OneRowPerAccount(t *testing.T) {
	accounts := []models.Account{
		{ID: 1, Name: "A", InitialBalance: d("10")},
		{ID: 2, Name: "B", InitialBalance: d("20")},
	}
	txs := []models.Transaction{
		{AccountID: uintPtr(2), Date: "2024-01-10", Type: models.TypeIncome, Amount: d("5")},
	}

	rows := Snapshot(accounts, txs)
	if len(rows) != 2 {
		t.Fatalf("Snapshot() rows = %d, want 2", len(rows))
	}
	if !rows[0].CurrentBalance.Equal(d("10")) {
		t.Errorf("rows[0].CurrentBalance = %s, want 10", rows[0].CurrentBalance)
	}
	if !rows[1].CurrentBalance.Equal(d("25")) {
		t.Errorf("rows[1].CurrentBalance = %s, want 25", rows[1].CurrentBalance)
	}
}

// TestPrevMonth 跨年也要算对
func TestPrevMonth(t *testing.T) {
	cases := map[string]string{
		"2024-03": "2024-02",
		"2024-01": "2023-12",
	}
	for in, want := range cases {
		if got := prevMonth(in); got != want {
			t.Errorf("prevMonth(%q) = %q, want %q", in, got, want)
		}
	}
}
