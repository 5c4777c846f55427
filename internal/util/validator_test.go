package util

import (
	"testing"
)

// TestValidateDate_Valid 测试有效日期
func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

// TestValidateDate_InvalidFormat 测试无效格式（异常）
func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01", // 月份错误
		"2024-01-32", // 日期错误
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

// TestValidateMonth_Valid 测试有效月份
func TestValidateMonth_Valid(t *testing.T) {
	testCases := []string{"2024-01", "2024-12", "2025-06"}

	for _, month := range testCases {
		err := ValidateMonth(month)
		if err != nil {
			t.Errorf("ValidateMonth(%q) error = %v, want nil", month, err)
		}
	}
}

// TestValidateMonth_Invalid 测试无效月份（异常）
func TestValidateMonth_Invalid(t *testing.T) {
	testCases := []string{"", "2024", "2024-13", "2024/01", "2024-1"}

	for _, month := range testCases {
		err := ValidateMonth(month)
		if err == nil {
			t.Errorf("ValidateMonth(%q) error = nil, want error", month)
		}
	}
}

// TestValidateClock_Valid 测试有效时刻，空串也算有效（字段可不填）
func TestValidateClock_Valid(t *testing.T) {
	testCases := []string{"", "00:00", "08:30", "23:59"}

	for _, clock := range testCases {
		err := ValidateClock(clock)
		if err != nil {
			t.Errorf("ValidateClock(%q) error = %v, want nil", clock, err)
		}
	}
}

// TestValidateClock_Invalid 测试无效时刻（异常）
func TestValidateClock_Invalid(t *testing.T) {
	testCases := []string{"24:00", "8:3", "08:60", "abc"}

	for _, clock := range testCases {
		err := ValidateClock(clock)
		if err == nil {
			t.Errorf("ValidateClock(%q) error = nil, want error", clock)
		}
	}
}

// TestValidateCategory_Valid 测试有效分类
func TestValidateCategory_Valid(t *testing.T) {
	testCases := []string{"食物", "车辆", "房屋", "教育", "工程"}

	for _, category := range testCases {
		err := ValidateCategory(category)
		if err != nil {
			t.Errorf("ValidateCategory(%q) error = %v, want nil", category, err)
		}
	}
}

// TestValidateCategory_Empty 测试空分类（异常）
func TestValidateCategory_Empty(t *testing.T) {
	err := ValidateCategory("")

	if err == nil {
		t.Error("ValidateCategory(\"\") error = nil, want error")
	}
}

// TestValidateCategory_TooLong 测试过长分类（异常）
func TestValidateCategory_TooLong(t *testing.T) {
	longCategory := "这是一个非常非常非常非常非常长的分类名称超过了合理的限制范围"

	err := ValidateCategory(longCategory)

	if err == nil {
		t.Error("ValidateCategory() with long string error = nil, want error")
	}
}
