package i18n

import "testing"

// TestParseLang 默认中文，只认 en（不区分大小写）
func TestParseLang(t *testing.T) {
	cases := map[string]Lang{
		"":   ZH,
		"zh": ZH,
		"en": EN,
		"EN": EN,
		"fr": ZH,
	}
	for in, want := range cases {
		if got := ParseLang(in); got != want {
			t.Errorf("ParseLang(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestT_ChineseIdentity 中文界面原样返回
func TestT_ChineseIdentity(t *testing.T) {
	if got := T("账户管理", ZH); got != "账户管理" {
		t.Errorf("T(zh) = %q, want 账户管理", got)
	}
}

// TestT_EnglishLookup 英文界面查字典
func TestT_EnglishLookup(t *testing.T) {
	if got := T("账户管理", EN); got != "Accounts" {
		t.Errorf("T(en) = %q, want Accounts", got)
	}
	if got := T("收入", EN); got != "Income" {
		t.Errorf("T(en) = %q, want Income", got)
	}
}

// TestT_MissingKeyFallback 查不到的文案回退原文
func TestT_MissingKeyFallback(t *testing.T) {
	if got := T("不存在的文案", EN); got != "不存在的文案" {
		t.Errorf("T(missing) = %q, want 原文", got)
	}
}

// TestTn_Placeholder 替换 {n} 占位符
func TestTn_Placeholder(t *testing.T) {
	if got := Tn("（占 {n}%）", EN, "25.00"); got != "(Share 25.00%)" {
		t.Errorf("Tn(en) = %q, want (Share 25.00%%)", got)
	}
	if got := Tn("（占 {n}%）", ZH, "25.00"); got != "（占 25.00%）" {
		t.Errorf("Tn(zh) = %q, want （占 25.00%%）", got)
	}
}

// TestDisplayName 固定花销名称只在英文界面翻译
func TestDisplayName(t *testing.T) {
	if got := DisplayName("房租", EN); got != "Rent" {
		t.Errorf("DisplayName(en) = %q, want Rent", got)
	}
	if got := DisplayName("房租", ZH); got != "房租" {
		t.Errorf("DisplayName(zh) = %q, want 房租", got)
	}
	if got := DisplayName("自定义开销", EN); got != "自定义开销" {
		t.Errorf("DisplayName(missing) = %q, want 原文", got)
	}
}
