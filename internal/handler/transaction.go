package handler

import (
	"net/http"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler 负责收支记录接口
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionReq struct {
	AccountID   *uint           `json:"account_id"`
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required,max=16"`
	Category    string          `json:"category" binding:"max=32"`
	Subcategory string          `json:"subcategory" binding:"max=32"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"max=8"`
	Note        string          `json:"note" binding:"max=255"`
}

func (r *transactionReq) normalize() error {
	if r.Currency == "" {
		r.Currency = "CAD"
	}
	return util.ValidateDate(r.Date)
}

// ListTransactions 按日期倒序返回当前用户全部收支记录
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	util.Success(c, util.Response{
		"transactions": txs,
	})
}

// CreateTransaction 新增一笔记录。金额正负号即收支方向，不做强制校验。
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		AccountID:   req.AccountID,
		Date:        req.Date,
		Type:        req.Type,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Note:        req.Note,
	}
	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}

// UpdateTransaction 修改一笔记录（只能修改自己的）
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	var tx models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	tx.AccountID = req.AccountID
	tx.Date = req.Date
	tx.Type = req.Type
	tx.Category = req.Category
	tx.Subcategory = req.Subcategory
	tx.Amount = req.Amount
	tx.Currency = req.Currency
	tx.Note = req.Note

	if err := h.DB.Save(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}

// DeleteTransaction 删除一笔记录
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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
		Delete(&models.Transaction{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
