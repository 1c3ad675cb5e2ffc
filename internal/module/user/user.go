package user

import (
	"escort-cms/internal/global/database"
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// minPasswordLen 注册密码最小长度
const minPasswordLen = 8

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"` // 登录邮箱
	Password string `json:"password" binding:"required"`    // 明文密码
}

// RegisterReq 定义创建后台用户请求的结构体
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"max=100"`
	RoleID   int    `json:"role_id"` // 0 普通用户，1 管理员
}

// Login 处理用户登录请求
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 查询用户是否存在
	var user model.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "email", req.Email)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证密码
	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "email", req.Email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功", "email", user.Email, "role_id", user.RoleID)

	// 生成 JWT 令牌并返回用户信息
	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: user.RoleID,
		}),
		"email":   user.Email,
		"role_id": user.RoleID,
	})
}

// Register 处理创建后台用户请求，仅管理员可用
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if len(req.Password) < minPasswordLen {
		response.Fail(c, response.ErrInvalidRequest.WithTips("密码长度至少 8 位"))
		return
	}
	if req.RoleID != jwt.RoleAuthor && req.RoleID != jwt.RoleAdmin {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未知的角色"))
		return
	}

	var count int64
	if err := database.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		log.Warn("邮箱已被注册", "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips("邮箱已被注册"))
		return
	}

	hashed, err := tools.PasswordHash(req.Password)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		RoleID:   req.RoleID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"id": user.ID})
}

// Info 返回当前登录用户的信息
func Info(c *gin.Context) {
	payload, exist := jwt.GetUserPayload(c)
	if !exist {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", payload.UserID).Error; err != nil {
		log.Warn("用户不存在", "user_id", payload.UserID)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	}
	response.Success(c, user)
}
