package handler

import (
	"net/http"
	"strconv"

	"github.com/jack-li-codes/family-finance-app/internal/models"
	"github.com/jack-li-codes/family-finance-app/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser 从 context 取当前用户；取不到时写好错误响应并返回 nil。
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return nil
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return nil
	}
	return user
}

// pathID 解析 :id 路径参数；不合法时写好错误响应并返回 0。
func pathID(c *gin.Context) uint {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return 0
	}
	return uint(id)
}
