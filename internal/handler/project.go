package handler

import (
	"net/http"
	"strings"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProjectHandler 负责项目管理接口
type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

type projectReq struct {
	Name         string `json:"name" binding:"required,max=64"`
	Location     string `json:"location" binding:"max=128"`
	PlannedStart string `json:"planned_start"`
	PlannedEnd   string `json:"planned_end"`
	ActualStart  string `json:"actual_start"`
	ActualEnd    string `json:"actual_end"`
	Note         string `json:"note" binding:"max=255"`
}

func (r *projectReq) normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	for _, d := range []string{r.PlannedStart, r.PlannedEnd, r.ActualStart, r.ActualEnd} {
		if d == "" {
			continue
		}
		if err := util.ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}

// ListProjects 返回当前用户全部项目
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var projects []models.Project
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	util.Success(c, util.Response{
		"projects": projects,
	})
}

// CreateProject 新建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	project := models.Project{
		UserID:       user.ID,
		Name:         req.Name,
		Location:     req.Location,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		ActualStart:  req.ActualStart,
		ActualEnd:    req.ActualEnd,
		Note:         req.Note,
	}
	if err := h.DB.Create(&project).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"project": project,
	})
}

// UpdateProject 修改项目（只能修改自己的）
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	var project models.Project
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	project.Name = req.Name
	project.Location = req.Location
	project.PlannedStart = req.PlannedStart
	project.PlannedEnd = req.PlannedEnd
	project.ActualStart = req.ActualStart
	project.ActualEnd = req.ActualEnd
	project.Note = req.Note

	if err := h.DB.Save(&project).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"project": project,
	})
}

// DeleteProject 删除项目（硬删除，工时记录上的 project_id 变为悬空）
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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
		Delete(&models.Project{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
