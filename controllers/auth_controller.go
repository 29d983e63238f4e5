package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, staff, err := ac.Auth.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"token":   token,
		"staffId": staff.StaffID,
		"roleId":  staff.RoleID,
	})
}
