package controllers

import (
	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type WithdrawalController struct {
	Withdrawals *services.WithdrawalService
}

func NewWithdrawalController(withdrawals *services.WithdrawalService) *WithdrawalController {
	return &WithdrawalController{Withdrawals: withdrawals}
}

// GET /restaurants/:id/withdrawal/status
func (wc *WithdrawalController) Status(c *gin.Context) {
	status, err := wc.Withdrawals.Status(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// GET /restaurants/:id/withdrawal
func (wc *WithdrawalController) Detail(c *gin.Context) {
	w, err := wc.Withdrawals.Find(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, w)
}

type withdrawalReq struct {
	Description string `json:"description"`
}

// POST /restaurants/:id/withdrawal
func (wc *WithdrawalController) Request(c *gin.Context) {
	var req withdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	w, err := wc.Withdrawals.Request(c.Param("id"), req.Description)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, w)
}

// DELETE /restaurants/:id/withdrawal
func (wc *WithdrawalController) Cancel(c *gin.Context) {
	w, err := wc.Withdrawals.Cancel(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, w)
}

// GET /admin/withdrawals/pending
func (wc *WithdrawalController) Pending(c *gin.Context) {
	items, err := wc.Withdrawals.ListByStatus(entity.WithdrawPending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/withdrawals/:id/approve
func (wc *WithdrawalController) Approve(c *gin.Context) {
	w, err := wc.Withdrawals.Approve(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, w)
}

type denyReq struct {
	Reason string `json:"reason" binding:"required"`
}

// PATCH /admin/withdrawals/:id/deny
func (wc *WithdrawalController) Deny(c *gin.Context) {
	var req denyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	w, err := wc.Withdrawals.Deny(c.Param("id"), req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, w)
}
