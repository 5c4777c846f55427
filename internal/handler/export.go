package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jack-li-codes/family-finance-app/internal/i18n"
	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/report"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 负责各页面的 Excel / CSV 导出。
// ?lang=en 时表头、工作表名、类型文案走英文，数据本身不翻译（分类名除外展示层不动）。
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func exportLang(c *gin.Context) i18n.Lang {
	return i18n.ParseLang(c.Query("lang"))
}

// setHeaderRow 在第 1 行写表头
func setHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}
}

// setRow 写一行数据
func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		f.SetCellValue(sheet, cell, v)
	}
}

// writeXLSX 统一设置响应头并输出文件
func writeXLSX(c *gin.Context, f *excelize.File, baseName string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.xlsx\"",
		baseName, time.Now().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}

// newSheet 建一个工作表并设为活动表，同时删掉默认的 Sheet1
func newSheet(f *excelize.File, name string) error {
	index, err := f.NewSheet(name)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if name != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	return nil
}

// sanitizeSheetName Excel 工作表名不能含 []:*?/\ 且最长 31 个字符
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer("[", "", "]", "", ":", "", "*", "", "?", "", "/", "-", "\\", "-")
	name = replacer.Replace(name)
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		name = "Sheet"
	}
	return name
}

// ExportAccounts 导出账户列表
func (h *ExportHandler) ExportAccounts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).Order("name ASC").Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheet := i18n.T("账户管理", lang)
	if err := newSheet(f, sheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}

	setHeaderRow(f, sheet, []string{
		i18n.T("账户名称", lang), i18n.T("分类", lang), i18n.T("所有人", lang),
		i18n.T("币种", lang), i18n.T("卡号", lang),
		i18n.T("初始余额", lang), i18n.T("初始日期", lang), i18n.T("备注", lang),
	})
	for idx, a := range accounts {
		initialDate := ""
		if a.InitialDate != nil {
			initialDate = *a.InitialDate
		}
		setRow(f, sheet, idx+2, []interface{}{
			a.Name, i18n.T(a.Category, lang), a.Owner,
			a.Currency, a.CardNumber,
			a.InitialBalance.StringFixed(2), initialDate, a.Note,
		})
	}
	f.SetColWidth(sheet, "A", "B", 15)
	f.SetColWidth(sheet, "E", "E", 18)
	f.SetColWidth(sheet, "H", "H", 30)

	writeXLSX(c, f, "accounts")
}

// ExportTransactions 导出收支记录为 XLSX
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	accountNames := h.accountNames(user.ID)

	f := excelize.NewFile()
	sheet := i18n.T("收入/支出", lang)
	if err := newSheet(f, sheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}

	setHeaderRow(f, sheet, []string{
		i18n.T("日期", lang), i18n.T("类型", lang), i18n.T("分类", lang),
		i18n.T("二级分类", lang), i18n.T("金额", lang), i18n.T("币种", lang),
		i18n.T("账户", lang), i18n.T("备注", lang),
	})
	for idx, t := range txs {
		setRow(f, sheet, idx+2, []interface{}{
			t.Date, i18n.T(t.Type, lang), i18n.T(t.Category, lang),
			i18n.T(t.Subcategory, lang), t.Amount.StringFixed(2), t.Currency,
			h.accountLabel(accountNames, t.AccountID, lang), t.Note,
		})
	}
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "C", "D", 14)
	f.SetColWidth(sheet, "H", "H", 30)

	writeXLSX(c, f, "transactions")
}

// ExportTransactionsCSV 导出收支记录为 CSV
func (h *ExportHandler) ExportTransactionsCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	accountNames := h.accountNames(user.ID)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{
		i18n.T("日期", lang), i18n.T("类型", lang), i18n.T("分类", lang),
		i18n.T("二级分类", lang), i18n.T("金额", lang), i18n.T("币种", lang),
		i18n.T("账户", lang), i18n.T("备注", lang),
	})
	for _, t := range txs {
		writer.Write([]string{
			t.Date, i18n.T(t.Type, lang), i18n.T(t.Category, lang),
			i18n.T(t.Subcategory, lang), t.Amount.StringFixed(2), t.Currency,
			h.accountLabel(accountNames, t.AccountID, lang), t.Note,
		})
	}
}

// ExportWorkLogs 导出工时记录
func (h *ExportHandler) ExportWorkLogs(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var logs []models.WorkLog
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	var projects []models.Project
	if err := h.DB.Where("user_id = ?", user.ID).Find(&projects).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	nameByID := make(map[uint]string, len(projects))
	for _, p := range projects {
		nameByID[p.ID] = p.Name
	}

	f := excelize.NewFile()
	sheet := i18n.T("工程记录", lang)
	if err := newSheet(f, sheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}

	setHeaderRow(f, sheet, []string{
		i18n.T("日期", lang), i18n.T("项目", lang), i18n.T("出发时间", lang),
		i18n.T("回家时间", lang), i18n.T("总工时", lang), i18n.T("实际工时", lang),
		i18n.T("地点", lang), i18n.T("节假日", lang), i18n.T("备注", lang),
	})
	for idx, w := range logs {
		project := i18n.T("无项目", lang)
		if w.ProjectID != nil {
			if n, ok := nameByID[*w.ProjectID]; ok {
				project = n
			}
		}
		holiday := ""
		if w.IsHoliday {
			holiday = i18n.T("节假日", lang)
		}
		setRow(f, sheet, idx+2, []interface{}{
			w.Date, project, w.StartTime,
			w.EndTime, w.Hours, w.ActualHours,
			w.Location, holiday, w.Note,
		})
	}
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "G", "G", 18)
	f.SetColWidth(sheet, "I", "I", 30)

	writeXLSX(c, f, "worklogs")
}

// ExportProjects 导出项目列表
func (h *ExportHandler) ExportProjects(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var projects []models.Project
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheet := i18n.T("项目管理", lang)
	if err := newSheet(f, sheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}

	setHeaderRow(f, sheet, []string{
		i18n.T("名称", lang), i18n.T("地点", lang),
		i18n.T("预计开始", lang), i18n.T("预计结束", lang),
		i18n.T("实际开始", lang), i18n.T("实际结束", lang),
		i18n.T("备注", lang),
	})
	for idx, p := range projects {
		setRow(f, sheet, idx+2, []interface{}{
			p.Name, p.Location,
			p.PlannedStart, p.PlannedEnd,
			p.ActualStart, p.ActualEnd,
			p.Note,
		})
	}
	f.SetColWidth(sheet, "A", "B", 18)
	f.SetColWidth(sheet, "G", "G", 30)

	writeXLSX(c, f, "projects")
}

// ExportBalance 导出余额快照
func (h *ExportHandler) ExportBalance(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).Order("name ASC").Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheet := i18n.T("账户余额", lang)
	if err := newSheet(f, sheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}

	setHeaderRow(f, sheet, []string{
		i18n.T("账户名称", lang), i18n.T("所有人", lang), i18n.T("币种", lang),
		i18n.T("初始余额", lang), i18n.T("当前余额", lang),
	})
	for idx, row := range report.Snapshot(accounts, txs) {
		setRow(f, sheet, idx+2, []interface{}{
			row.Account.Name, row.Account.Owner, row.Account.Currency,
			row.Account.InitialBalance.StringFixed(2), row.CurrentBalance.StringFixed(2),
		})
	}
	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "D", "E", 14)

	writeXLSX(c, f, "balance")
}

// ExportAccountOverview 导出账户总览：每个账户一个工作表，按月份分段。
// 段内依次是 上月余额、收入明细与汇总、支出明细与汇总、转账明细、当月净额、下月余额。
func (h *ExportHandler) ExportAccountOverview(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	lang := exportLang(c)

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	sections := report.Overview(accounts, txs)
	if len(sections) == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "暂无数据")
		return
	}

	f := excelize.NewFile()
	used := make(map[string]bool)
	for secIdx, sec := range sections {
		name := sec.Account.Name
		if name == report.UnassignedKey {
			name = i18n.T("未分配账户", lang)
		}
		sheet := sanitizeSheetName(name)
		// 重名账户加序号区分
		if used[sheet] {
			sheet = sanitizeSheetName(fmt.Sprintf("%s-%d", sheet, secIdx+1))
		}
		used[sheet] = true

		index, err := f.NewSheet(sheet)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
			return
		}
		if secIdx == 0 {
			f.SetActiveSheet(index)
		}

		row := 1
		for _, m := range sec.MonthKeys {
			bucket := sec.Months[m]

			setRow(f, sheet, row, []interface{}{m})
			row++
			setRow(f, sheet, row, []interface{}{
				i18n.T("上月余额", lang), bucket.PrevBalance.StringFixed(2),
			})
			row++

			setRow(f, sheet, row, []interface{}{
				i18n.T("收入汇总（正）", lang), bucket.IncomeTotal.StringFixed(2),
			})
			row++
			row = h.writeOverviewDetail(f, sheet, row, bucket.Income, lang)

			setRow(f, sheet, row, []interface{}{
				i18n.T("支出汇总（负）", lang), bucket.ExpenseTotal.StringFixed(2),
			})
			row++
			row = h.writeOverviewDetail(f, sheet, row, bucket.Expense, lang)

			if len(bucket.Transfer) > 0 {
				setRow(f, sheet, row, []interface{}{
					i18n.T("转账（仅展示，不计入汇总）", lang),
				})
				row++
				row = h.writeOverviewDetail(f, sheet, row, bucket.Transfer, lang)
			}

			setRow(f, sheet, row, []interface{}{
				i18n.T("净额", lang), bucket.Net.StringFixed(2),
			})
			row++
			setRow(f, sheet, row, []interface{}{
				i18n.T("下月余额", lang), bucket.NextBalance().StringFixed(2),
			})
			row += 2 // 月份之间空一行
		}

		f.SetColWidth(sheet, "A", "A", 24)
		f.SetColWidth(sheet, "B", "B", 14)
		f.SetColWidth(sheet, "E", "E", 30)
	}
	f.DeleteSheet("Sheet1")

	writeXLSX(c, f, "account_overview")
}

// writeOverviewDetail 写总览的明细行：日期、金额、分类、备注，首列缩进
func (h *ExportHandler) writeOverviewDetail(f *excelize.File, sheet string, row int, list []models.Transaction, lang i18n.Lang) int {
	for _, t := range list {
		setRow(f, sheet, row, []interface{}{
			"  " + t.Date, t.Amount.StringFixed(2), i18n.T(t.Category, lang),
			i18n.T(t.Subcategory, lang), t.Note,
		})
		row++
	}
	return row
}

// accountNames 账户 ID → 名称
func (h *ExportHandler) accountNames(userID uint) map[uint]string {
	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return map[uint]string{}
	}
	names := make(map[uint]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	return names
}

func (h *ExportHandler) accountLabel(names map[uint]string, id *uint, lang i18n.Lang) string {
	if id == nil {
		return i18n.T("未分配账户", lang)
	}
	if n, ok := names[*id]; ok {
		return n
	}
	return i18n.T("未知账户", lang) + " #" + strconv.FormatUint(uint64(*id), 10)
}
