// Package i18n 提供中英文界面文案切换。
// 源文案统一用中文；中文界面原样显示，英文界面查表翻译，查不到就原样返回。
package i18n

import "strings"

// Lang 界面语言
type Lang string

const (
	ZH Lang = "zh"
	EN Lang = "en"
)

// ParseLang 解析 ?lang= 参数，默认中文
func ParseLang(s string) Lang {
	if strings.EqualFold(s, "en") {
		return EN
	}
	return ZH
}

// T 翻译一个文案。中文是恒等映射，英文查字典、缺失时回退原文。
func T(key string, lang Lang) string {
	if lang == ZH {
		return key
	}
	if v, ok := base[key]; ok {
		return v
	}
	return key
}

// Tn 翻译带一个 {n} 占位符的文案
func Tn(key string, lang Lang, n string) string {
	return strings.Replace(T(key, lang), "{n}", n, 1)
}

// DisplayName 固定花销名称的显示层中→英映射（只影响界面，不改数据库）
func DisplayName(name string, lang Lang) string {
	if lang == ZH {
		return name
	}
	if v, ok := fixedExpenseNameEN[name]; ok {
		return v
	}
	return name
}

var fixedExpenseNameEN = map[string]string{
	"房租":    "Rent",
	"水电燃气":  "Utilities",
	"网络/手机": "Internet & Mobile",
	"车险":    "Car Insurance",
	"健身房":   "Gym Membership",
}
