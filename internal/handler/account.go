package handler

import (
	"net/http"
	"strings"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/report"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountHandler 负责账户管理接口
type AccountHandler struct {
	DB *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{DB: db}
}

type accountReq struct {
	Name           string          `json:"name" binding:"required,max=64"`
	Category       string          `json:"category" binding:"max=32"`
	Owner          string          `json:"owner" binding:"required,max=32"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       string          `json:"currency" binding:"max=8"`
	CardNumber     string          `json:"card_number" binding:"max=32"`
	Note           string          `json:"note" binding:"max=255"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	InitialDate    *string         `json:"initial_date"`
}

func (r *accountReq) normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Owner = strings.TrimSpace(r.Owner)
	if r.Currency == "" {
		r.Currency = "CAD"
	}
	if r.InitialDate != nil && *r.InitialDate != "" {
		return util.ValidateDate(*r.InitialDate)
	}
	if r.InitialDate != nil && *r.InitialDate == "" {
		r.InitialDate = nil
	}
	return nil
}

// ListAccounts 返回当前用户全部账户，附带每个账户的当前余额
// 和按币种汇总的家庭总余额（余额 + 初始余额）。
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	type accountRow struct {
		models.Account
		CurrentBalance decimal.Decimal `json:"current_balance"`
	}
	rows := make([]accountRow, 0, len(accounts))
	totals := make(map[string]decimal.Decimal)
	for _, a := range accounts {
		rows = append(rows, accountRow{
			Account:        a,
			CurrentBalance: report.CurrentBalance(a, txs),
		})
		cur := a.Currency
		if cur == "" {
			cur = "UNKNOWN"
		}
		totals[cur] = totals[cur].Add(a.Balance).Add(a.InitialBalance)
	}

	util.Success(c, util.Response{
		"accounts":       rows,
		"total_balances": totals,
	})
}

// CreateAccount 新建账户
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "账户名称和所有人不能为空")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "起始日期格式错误，应为 YYYY-MM-DD")
		return
	}

	account := models.Account{
		UserID:         user.ID,
		Name:           req.Name,
		Category:       req.Category,
		Owner:          req.Owner,
		Balance:        req.Balance,
		Currency:       req.Currency,
		CardNumber:     req.CardNumber,
		Note:           req.Note,
		InitialBalance: req.InitialBalance,
		InitialDate:    req.InitialDate,
	}
	if err := h.DB.Create(&account).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"account": account,
	})
}

// UpdateAccount 修改账户（只能修改自己的）
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "账户名称和所有人不能为空")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "起始日期格式错误，应为 YYYY-MM-DD")
		return
	}

	var account models.Account
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	account.Name = req.Name
	account.Category = req.Category
	account.Owner = req.Owner
	account.Balance = req.Balance
	account.Currency = req.Currency
	account.CardNumber = req.CardNumber
	account.Note = req.Note
	account.InitialBalance = req.InitialBalance
	account.InitialDate = req.InitialDate

	if err := h.DB.Save(&account).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"account": account,
	})
}

// DeleteAccount 删除账户（硬删除，交易上的 account_id 变为悬空、归入未分配桶）
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	if err := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Account{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
