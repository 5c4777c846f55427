package util

import (
	"fmt"
	"time"
)

// ValidateDate 验证日期格式（必须为 YYYY-MM-DD）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateMonth 验证月份格式（必须为 YYYY-MM）
func ValidateMonth(monthStr string) error {
	if monthStr == "" {
		return fmt.Errorf("month is empty")
	}
	_, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return fmt.Errorf("invalid month format: %w", err)
	}
	return nil
}

// ValidateClock 验证时刻格式（必须为 HH:MM，可为空）
func ValidateClock(clockStr string) error {
	if clockStr == "" {
		return nil
	}
	_, err := time.Parse("15:04", clockStr)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}
	return nil
}

// ValidateCategory 验证分类（不能为空且长度合理）
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len([]rune(category)) > 20 {
		return fmt.Errorf("category too long, max 20 characters")
	}
	return nil
}
