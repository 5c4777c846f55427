package handler

import (
	"net/http"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/report"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler 负责报表接口：账户总览、余额快照、收支汇总。
// 聚合本身在 report 包里完成，这里只负责取数和参数。
type ReportHandler struct {
	DB       *gorm.DB
	Currency string   // 汇总报表的统计币种
	Excluded []string // 不进合计与占比的分类
}

func NewReportHandler(db *gorm.DB, currency string, excluded []string) *ReportHandler {
	return &ReportHandler{DB: db, Currency: currency, Excluded: excluded}
}

func (h *ReportHandler) loadAccountsAndTransactions(c *gin.Context, userID uint) ([]models.Account, []models.Transaction, bool) {
	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return nil, nil, false
	}
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return nil, nil, false
	}
	return accounts, txs, true
}

// AccountOverview 账户 → 月份 两级分桶，含各月上月余额和派生的下月余额
func (h *ReportHandler) AccountOverview(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	accounts, txs, ok := h.loadAccountsAndTransactions(c, user.ID)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"sections": report.Overview(accounts, txs),
	})
}

// Balance 每个账户一行的当前余额快照
func (h *ReportHandler) Balance(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	accounts, txs, ok := h.loadAccountsAndTransactions(c, user.ID)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"balances": report.Snapshot(accounts, txs),
	})
}

// Summary 月份 → 类型 → 分类 的收支汇总。
// ?currency= 可临时切换统计币种，默认取配置里的报表币种。
func (h *ReportHandler) Summary(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	currency := c.Query("currency")
	if currency == "" {
		currency = h.Currency
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	util.Success(c, util.Response{
		"currency":            currency,
		"excluded_categories": h.Excluded,
		"summaries":           report.Summarize(txs, currency, h.Excluded),
	})
}
