package handler

import (
	"net/http"
	"time"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/report"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WorkLogHandler 负责工时记录接口
type WorkLogHandler struct {
	DB *gorm.DB
}

func NewWorkLogHandler(db *gorm.DB) *WorkLogHandler {
	return &WorkLogHandler{DB: db}
}

type workLogReq struct {
	ProjectID   *uint   `json:"project_id"`
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Hours       float64 `json:"hours"`
	ActualHours float64 `json:"actual_hours"`
	Location    string  `json:"location" binding:"max=128"`
	Note        string  `json:"note" binding:"max=255"`
	IsHoliday   bool    `json:"is_holiday"`
}

func (r *workLogReq) normalize() error {
	if err := util.ValidateDate(r.Date); err != nil {
		return err
	}
	if err := util.ValidateClock(r.StartTime); err != nil {
		return err
	}
	if err := util.ValidateClock(r.EndTime); err != nil {
		return err
	}
	// 没手工填工时就按出发/回家时刻推算
	if r.Hours == 0 {
		r.Hours = report.DeriveHours(r.StartTime, r.EndTime)
	}
	return nil
}

type workLogRow struct {
	models.WorkLog
	ProjectName string `json:"project_name"`
}

// withProjectNames 把项目名拼到每条记录上，没有项目的显示“无项目”
func (h *WorkLogHandler) withProjectNames(userID uint, logs []models.WorkLog) ([]workLogRow, error) {
	var projects []models.Project
	if err := h.DB.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, err
	}
	nameByID := make(map[uint]string, len(projects))
	for _, p := range projects {
		nameByID[p.ID] = p.Name
	}

	rows := make([]workLogRow, 0, len(logs))
	for _, w := range logs {
		name := "无项目"
		if w.ProjectID != nil {
			if n, ok := nameByID[*w.ProjectID]; ok {
				name = n
			}
		}
		rows = append(rows, workLogRow{WorkLog: w, ProjectName: name})
	}
	return rows, nil
}

// ListWorkLogs 按日期倒序返回当前用户全部工时记录
func (h *WorkLogHandler) ListWorkLogs(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var logs []models.WorkLog
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	rows, err := h.withProjectNames(user.ID, logs)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	util.Success(c, util.Response{
		"worklogs": rows,
	})
}

// CreateWorkLog 新增工时记录
func (h *WorkLogHandler) CreateWorkLog(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req workLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期或时间格式错误")
		return
	}

	log := models.WorkLog{
		UserID:      user.ID,
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Hours:       req.Hours,
		ActualHours: req.ActualHours,
		Location:    req.Location,
		Note:        req.Note,
		IsHoliday:   req.IsHoliday,
	}
	if err := h.DB.Create(&log).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"worklog": log,
	})
}

// UpdateWorkLog 修改工时记录（只能修改自己的）
func (h *WorkLogHandler) UpdateWorkLog(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id := pathID(c)
	if id == 0 {
		return
	}

	var req workLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if err := req.normalize(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期或时间格式错误")
		return
	}

	var log models.WorkLog
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&log).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	log.ProjectID = req.ProjectID
	log.Date = req.Date
	log.StartTime = req.StartTime
	log.EndTime = req.EndTime
	log.Hours = req.Hours
	log.ActualHours = req.ActualHours
	log.Location = req.Location
	log.Note = req.Note
	log.IsHoliday = req.IsHoliday

	if err := h.DB.Save(&log).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"worklog": log,
	})
}

// DeleteWorkLog 删除工时记录
func (h *WorkLogHandler) DeleteWorkLog(c *gin.Context) {
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
		Delete(&models.WorkLog{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败："+err.Error())
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}

// GetWorkStats 工时统计：本周（周一起算）、本月、最近 8 周、最近 12 个月。
// ?holiday=include 只统计节假日，exclude 排除节假日，默认全部。
func (h *WorkLogHandler) GetWorkStats(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var logs []models.WorkLog
	if err := h.DB.Where("user_id = ?", user.ID).Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	filter := report.ParseHolidayFilter(c.Query("holiday"))
	stats := report.ComputeWorkStats(logs, time.Now(), filter)

	util.Success(c, util.Response{
		"stats": stats,
	})
}
