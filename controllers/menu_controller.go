package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

// GET /restaurants/:id/menu?available=true
func (mc *MenuController) List(c *gin.Context) {
	availableOnly := c.Query("available") == "true"
	items, err := mc.Menus.List(c.Param("id"), availableOnly)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /restaurants/:id/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menus.Create(c.Param("id"), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menus.Update(c.Param("id"), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

type availabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /menu/:id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menus.SetAvailability(c.Param("id"), *req.Available)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.Menus.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
