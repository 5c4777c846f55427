package handler

import (
	"net/http"
	"strings"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FixedExpenseHandler 负责每月固定花销接口。
// 演示账号不读写数据库，直接返回内置演示数据。
type FixedExpenseHandler struct {
	DB        *gorm.DB
	DemoUsers []string
}

func NewFixedExpenseHandler(db *gorm.DB, demoUsers []string) *FixedExpenseHandler {
	return &FixedExpenseHandler{DB: db, DemoUsers: demoUsers}
}

func (h *FixedExpenseHandler) isDemoUser(username string) bool {
	for _, u := range h.DemoUsers {
		if strings.EqualFold(u, username) {
			return true
		}
	}
	return false
}

type fixedExpenseReq struct {
	Name      string          `json:"name" binding:"required,max=64"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"max=8"`
	Note      string          `json:"note" binding:"max=255"`
	Icon      string          `json:"icon" binding:"max=16"`
	SortOrder int             `json:"sort_order"`
	IsActive  *bool           `json:"is_active"`
}

// ListFixedExpenses 管理列表：含已停用（软删除）的条目，可恢复
func (h *FixedExpenseHandler) ListFixedExpenses(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	if h.isDemoUser(user.Username) {
		util.Success(c, util.Response{
			"expenses": demoFixedExpenses,
			"demo":     true,
		})
		return
	}

	var expenses []models.FixedExpense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("sort_order ASC, id ASC").
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	util.Success(c, util.Response{
		"expenses": expenses,
	})
}

// CurrentFixedExpenses 当前月份固定花销卡片：只含启用条目，附按币种合计
func (h *FixedExpenseHandler) CurrentFixedExpenses(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var expenses []models.FixedExpense
	if h.isDemoUser(user.Username) {
		expenses = demoFixedExpenses
	} else {
		if err := h.DB.Where("user_id = ? AND is_active = ?", user.ID, true).
			Order("sort_order ASC, id ASC").
			Find(&expenses).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
			return
		}
	}

	util.Success(c, util.Response{
		"expenses": expenses,
		"totals":   TotalsByCurrency(expenses),
	})
}

// TotalsByCurrency 按币种汇总启用条目的金额；停用条目不计入
func TotalsByCurrency(expenses []models.FixedExpense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !e.IsActive {
			continue
		}
		totals[e.Currency] = totals[e.Currency].Add(e.Amount)
	}
	return totals
}

// CreateFixedExpense 新增固定花销
func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	if h.isDemoUser(user.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "（演示模式）演示用户无法修改数据")
		return
	}

	var req fixedExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if req.Currency == "" {
		req.Currency = "CAD"
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	expense := models.FixedExpense{
		UserID:    user.ID,
		Name:      strings.TrimSpace(req.Name),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Note:      req.Note,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  active,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"expense": expense,
	})
}

// UpdateFixedExpense 修改固定花销
func (h *FixedExpenseHandler) UpdateFixedExpense(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	if h.isDemoUser(user.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "（演示模式）演示用户无法修改数据")
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req fixedExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	var expense models.FixedExpense
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	expense.Name = strings.TrimSpace(req.Name)
	expense.Amount = req.Amount
	if req.Currency != "" {
		expense.Currency = req.Currency
	}
	expense.Note = req.Note
	expense.Icon = req.Icon
	expense.SortOrder = req.SortOrder
	if req.IsActive != nil {
		expense.IsActive = *req.IsActive
	}

	if err := h.DB.Save(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"expense": expense,
	})
}

// setActive 软删除/恢复共用：只改 is_active 标记
func (h *FixedExpenseHandler) setActive(c *gin.Context, active bool, okMsg string) {
	user := currentUser(c)
	if user == nil {
		return
	}
	if h.isDemoUser(user.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "（演示模式）演示用户无法修改数据")
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	res := h.DB.Model(&models.FixedExpense{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_active", active)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败："+res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		return
	}

	util.Success(c, util.Response{
		"message": okMsg,
	})
}

// DeactivateFixedExpense 软删除：不再计入当月固定花销合计，但管理列表仍可见
func (h *FixedExpenseHandler) DeactivateFixedExpense(c *gin.Context) {
	h.setActive(c, false, "已停用")
}

// RestoreFixedExpense 恢复软删除的条目
func (h *FixedExpenseHandler) RestoreFixedExpense(c *gin.Context) {
	h.setActive(c, true, "恢复成功")
}

// DeleteFixedExpense 永久删除，不可恢复
func (h *FixedExpenseHandler) DeleteFixedExpense(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	if h.isDemoUser(user.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "（演示模式）演示用户无法修改数据")
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	if err := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.FixedExpense{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}

// ImportTemplate 按 (user_id, name) 批量 upsert 内置模板。
// 没有回滚协调：一批写入要么全部成功，失败时把后端错误原样抛给用户。
func (h *FixedExpenseHandler) ImportTemplate(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	if h.isDemoUser(user.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "（演示模式）演示用户无法导入模板")
		return
	}

	batch := make([]models.FixedExpense, len(templateFixedExpenses))
	copy(batch, templateFixedExpenses)
	for i := range batch {
		batch[i].UserID = user.ID
	}

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount", "currency", "note", "icon", "sort_order", "is_active",
		}),
	}).Create(&batch).Error
	if err != nil {
		// 已知错误给出更具体的提示，其余原样展示
		msg := err.Error()
		if strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "no unique") {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr,
				"导入失败：缺少 (user_id, name) 唯一索引，请先执行数据库迁移。"+msg)
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导入失败："+msg)
		return
	}

	util.Success(c, util.Response{
		"message":  "导入成功",
		"imported": len(batch),
	})
}
