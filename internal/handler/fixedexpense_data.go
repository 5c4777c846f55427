package handler

import (
	"github.com/jack-li-codes/family-finance-app/internal/models"

	"github.com/shopspring/decimal"
)

// demoFixedExpenses 演示账号固定返回的内置数据，不读写数据库
var demoFixedExpenses = []models.FixedExpense{
	{ID: 1, Name: "房租", Amount: decimal.NewFromFloat(1500.00), Note: "Demo 市中心公寓", Icon: "🏠", Currency: "CAD", SortOrder: 1, IsActive: true},
	{ID: 2, Name: "水电燃气", Amount: decimal.NewFromFloat(120.00), Note: "Demo 公用事业费", Icon: "💡", Currency: "CAD", SortOrder: 2, IsActive: true},
	{ID: 3, Name: "网络/手机", Amount: decimal.NewFromFloat(85.00), Note: "Demo 通讯费", Icon: "📱", Currency: "CAD", SortOrder: 3, IsActive: true},
	{ID: 4, Name: "车险", Amount: decimal.NewFromFloat(180.00), Note: "Demo 汽车保险", Icon: "🚗", Currency: "CAD", SortOrder: 4, IsActive: true},
	{ID: 5, Name: "健身房", Amount: decimal.NewFromFloat(60.00), Note: "Demo 会员费", Icon: "💪", Currency: "CAD", SortOrder: 5, IsActive: true},
}

// templateFixedExpenses 「导入模板」按 (user_id, name) 批量 upsert 的模板数据
var templateFixedExpenses = []models.FixedExpense{
	{Icon: "🏠", Name: "房贷", Amount: decimal.NewFromFloat(4482.28), Note: "（每月28号）", Currency: "CAD", SortOrder: 10, IsActive: true},
	{Icon: "🚗", Name: "汽车保险", Amount: decimal.NewFromFloat(497.13), Note: "（每月23号）", Currency: "CAD", SortOrder: 20, IsActive: true},
	{Icon: "🏡", Name: "房屋保险", Amount: decimal.NewFromFloat(208.02), Note: "（每月23号）", Currency: "CAD", SortOrder: 30, IsActive: true},
	{Icon: "🚘", Name: "车 lease", Amount: decimal.NewFromFloat(817.22), Note: "（每月10号）", Currency: "CAD", SortOrder: 40, IsActive: true},
	{Icon: "📅", Name: "地税", Amount: decimal.NewFromFloat(1560), Note: "（4月1次，6月25号）", Currency: "CAD", SortOrder: 50, IsActive: true},
	{Icon: "💡", Name: "水电", Amount: decimal.NewFromFloat(130), Note: "（每月20号）≈", Currency: "CAD", SortOrder: 60, IsActive: true},
	{Icon: "🔥", Name: "煤气", Amount: decimal.NewFromFloat(130), Note: "（每月20号）≈", Currency: "CAD", SortOrder: 70, IsActive: true},
	{Icon: "🌐", Name: "宽带", Amount: decimal.NewFromFloat(74), Note: "（每月5号）", Currency: "CAD", SortOrder: 80, IsActive: true},
	{Icon: "📱", Name: "电话费", Amount: decimal.NewFromFloat(169.47), Note: "（每月25号）", Currency: "CAD", SortOrder: 90, IsActive: true},
}
