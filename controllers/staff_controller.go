package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

// POST /admin/staff
func (sc *StaffController) Create(c *gin.Context) {
	var req services.CreateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	st, err := sc.Staff.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, st)
}

// PATCH /admin/staff/:id/inactivate
func (sc *StaffController) Inactivate(c *gin.Context) {
	st, err := sc.Staff.Inactivate(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, st)
}
