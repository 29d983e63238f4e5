package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"
	"github.com/ottchakarov/FrontDash/utils"

	"github.com/gin-gonic/gin"
)

type ApprovalController struct {
	Approvals *services.ApprovalService
}

func NewApprovalController(approvals *services.ApprovalService) *ApprovalController {
	return &ApprovalController{Approvals: approvals}
}

type approvalRequestReq struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
}

// POST /approval/request
func (ac *ApprovalController) Request(c *gin.Context) {
	var req approvalRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := ac.Approvals.Request(req.RestaurantID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

type approvalDecideReq struct {
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Reason       *string `json:"reason"`
}

// POST /admin/approvals/decide
func (ac *ApprovalController) Decide(c *gin.Context) {
	var req approvalDecideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	adminID := utils.CurrentStaffID(c)
	a, err := ac.Approvals.Decide(req.RestaurantID, req.Status, adminID, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

// GET /admin/approvals/pending
func (ac *ApprovalController) Pending(c *gin.Context) {
	items, err := ac.Approvals.Pending()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
