package report

import (
	"testing"
	"time"

	"github.com/jack-li-codes/family-finance-app/internal/models"
)

// 2025-03-12 是周三，所在周的周一是 2025-03-10
var statsNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

// TestComputeWorkStats_WeekStartsMonday 周从周一起算
func TestComputeWorkStats_WeekStartsMonday(t *testing.T) {
	logs := []models.WorkLog{
		{Date: "2025-03-10", Hours: 8}, // 本周周一
		{Date: "2025-03-09", Hours: 5}, // 上周周日
	}

	stats := ComputeWorkStats(logs, statsNow, HolidayAll)
	if stats.ThisWeekHours != 8 {
		t.Errorf("ThisWeekHours = %v, want 8", stats.ThisWeekHours)
	}
	if stats.ThisMonthHours != 13 {
		t.Errorf("ThisMonthHours = %v, want 13", stats.ThisMonthHours)
	}
}

// TestComputeWorkStats_ActualHoursPreferred 实际工时优先，为零退回推算工时
func TestComputeWorkStats_ActualHoursPreferred(t *testing.T) {
	logs := []models.WorkLog{
		{Date: "2025-03-10", Hours: 8, ActualHours: 6.5},
		{Date: "2025-03-11", Hours: 4, ActualHours: 0},
	}

	stats := ComputeWorkStats(logs, statsNow, HolidayAll)
	if stats.ThisWeekHours != 10.5 {
		t.Errorf("ThisWeekHours = %v, want 10.5", stats.ThisWeekHours)
	}
}

// TestComputeWorkStats_HolidayFilter 节假日过滤三种口径
func TestComputeWorkStats_HolidayFilter(t *testing.T) {
	logs := []models.WorkLog{
		{Date: "2025-03-10", Hours: 8, IsHoliday: false},
		{Date: "2025-03-11", Hours: 4, IsHoliday: true},
	}

	if got := ComputeWorkStats(logs, statsNow, HolidayAll).ThisWeekHours; got != 12 {
		t.Errorf("all: ThisWeekHours = %v, want 12", got)
	}
	if got := ComputeWorkStats(logs, statsNow, HolidayInclude).ThisWeekHours; got != 4 {
		t.Errorf("include: ThisWeekHours = %v, want 4", got)
	}
	if got := ComputeWorkStats(logs, statsNow, HolidayExclude).ThisWeekHours; got != 8 {
		t.Errorf("exclude: ThisWeekHours = %v, want 8", got)
	}
}

// TestComputeWorkStats_TrendZeroFilled 走势固定 8 周、12 个月，没记录的时段补零
func TestComputeWorkStats_TrendZeroFilled(t *testing.T) {
	logs := []models.WorkLog{
		{Date: "2025-03-10", Hours: 8},
		{Date: "2025-01-15", Hours: 6},
	}

	stats := ComputeWorkStats(logs, statsNow, HolidayAll)
	if len(stats.LastWeeks) != 8 {
		t.Fatalf("LastWeeks len = %d, want 8", len(stats.LastWeeks))
	}
	if len(stats.LastMonths) != 12 {
		t.Fatalf("LastMonths len = %d, want 12", len(stats.LastMonths))
	}

	// 最后一项是本周/本月
	lastWeek := stats.LastWeeks[7]
	if lastWeek.Label != "2025-03-10" || lastWeek.Hours != 8 {
		t.Errorf("LastWeeks[7] = %+v, want {2025-03-10 8}", lastWeek)
	}
	lastMonth := stats.LastMonths[11]
	if lastMonth.Label != "2025-03" || lastMonth.Hours != 8 {
		t.Errorf("LastMonths[11] = %+v, want {2025-03 8}", lastMonth)
	}

	// 二月没有记录，补零
	feb := stats.LastMonths[10]
	if feb.Label != "2025-02" || feb.Hours != 0 {
		t.Errorf("LastMonths[10] = %+v, want {2025-02 0}", feb)
	}
}

// TestComputeWorkStats_BadDateSkipped 日期解析失败的记录直接跳过
func TestComputeWorkStats_BadDateSkipped(t *testing.T) {
	logs := []models.WorkLog{
		{Date: "not-a-date", Hours: 8},
		{Date: "", Hours: 8},
	}

	stats := ComputeWorkStats(logs, statsNow, HolidayAll)
	if stats.ThisWeekHours != 0 || stats.ThisMonthHours != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

// TestMondayOf 周日归到上周
func TestMondayOf(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	if got := mondayOf(sunday).Format("2006-01-02"); got != "2025-03-03" {
		t.Errorf("mondayOf(sunday) = %s, want 2025-03-03", got)
	}
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := mondayOf(monday).Format("2006-01-02"); got != "2025-03-10" {
		t.Errorf("mondayOf(monday) = %s, want 2025-03-10", got)
	}
}

// TestDeriveHours 由出发/回家时刻推算工时
func TestDeriveHours(t *testing.T) {
	if got := DeriveHours("08:00", "16:30"); got != 8.5 {
		t.Errorf("DeriveHours(08:00, 16:30) = %v, want 8.5", got)
	}
	if got := DeriveHours("09:15", "09:15"); got != 0 {
		t.Errorf("DeriveHours(same) = %v, want 0", got)
	}
	if got := DeriveHours("", "16:00"); got != 0 {
		t.Errorf("DeriveHours(empty start) = %v, want 0", got)
	}
	if got := DeriveHours("abc", "16:00"); got != 0 {
		t.Errorf("DeriveHours(bad) = %v, want 0", got)
	}
}
