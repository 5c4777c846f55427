package report

import (
	"time"

	"github.com/jack-li-codes/family-finance-app/internal/models"
)

// HolidayFilter 节假日过滤方式
type HolidayFilter string

const (
	HolidayAll     HolidayFilter = "all"     // 不过滤
	HolidayInclude HolidayFilter = "include" // 只统计节假日
	HolidayExclude HolidayFilter = "exclude" // 排除节假日
)

// ParseHolidayFilter 解析 ?holiday= 参数，默认不过滤
func ParseHolidayFilter(s string) HolidayFilter {
	switch s {
	case string(HolidayInclude):
		return HolidayInclude
	case string(HolidayExclude):
		return HolidayExclude
	default:
		return HolidayAll
	}
}

// PeriodHours 一个时间段（周或月）的工时
type PeriodHours struct {
	Label string  `json:"label"` // 周：周一日期 YYYY-MM-DD；月：YYYY-MM
	Hours float64 `json:"hours"`
}

// WorkStats 工时统计结果，每次请求从全量记录重新算
type WorkStats struct {
	ThisWeekHours  float64       `json:"this_week_hours"`
	ThisMonthHours float64       `json:"this_month_hours"`
	LastWeeks      []PeriodHours `json:"last_weeks"`  // 最近 8 周，旧 → 新，含本周
	LastMonths     []PeriodHours `json:"last_months"` // 最近 12 个月，旧 → 新，含本月
}

// mondayOf 所在周的周一（周从周一开始）
func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // 周日算第 7 天
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -(wd - 1))
}

// ComputeWorkStats 计算本周/本月工时和最近 8 周、12 个月的走势。
// 日期解析失败的记录直接跳过；每条记录的工时取 ActualHours，为零退回 Hours。
func ComputeWorkStats(logs []models.WorkLog, now time.Time, filter HolidayFilter) WorkStats {
	thisMonday := mondayOf(now)
	thisMonth := now.Format("2006-01")

	weekHours := make(map[string]float64) // 周一日期 → 工时
	monthHours := make(map[string]float64)

	var stats WorkStats
	for i := range logs {
		w := &logs[i]
		switch filter {
		case HolidayInclude:
			if !w.IsHoliday {
				continue
			}
		case HolidayExclude:
			if w.IsHoliday {
				continue
			}
		}

		d, err := time.ParseInLocation("2006-01-02", w.Date, now.Location())
		if err != nil {
			continue
		}
		h := w.EffectiveHours()

		weekKey := mondayOf(d).Format("2006-01-02")
		weekHours[weekKey] += h
		monthHours[d.Format("2006-01")] += h

		if mondayOf(d).Equal(thisMonday) {
			stats.ThisWeekHours += h
		}
		if d.Format("2006-01") == thisMonth {
			stats.ThisMonthHours += h
		}
	}

	// 最近 8 周（含本周），旧 → 新；没有记录的周补零
	for i := 7; i >= 0; i-- {
		monday := thisMonday.AddDate(0, 0, -7*i)
		key := monday.Format("2006-01-02")
		stats.LastWeeks = append(stats.LastWeeks, PeriodHours{Label: key, Hours: weekHours[key]})
	}

	// 最近 12 个月（含本月），旧 → 新
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 11; i >= 0; i-- {
		key := firstOfMonth.AddDate(0, -i, 0).Format("2006-01")
		stats.LastMonths = append(stats.LastMonths, PeriodHours{Label: key, Hours: monthHours[key]})
	}

	return stats
}

// DeriveHours 由出发/回家时刻推算工时，保留两位小数。
// 时刻缺失或格式错误时返回 0。
func DeriveHours(startTime, endTime string) float64 {
	s, err1 := time.Parse("15:04", startTime)
	e, err2 := time.Parse("15:04", endTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	diff := e.Sub(s).Hours()
	return float64(int(diff*100+0.5)) / 100
}
