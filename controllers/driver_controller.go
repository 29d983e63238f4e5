package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type DriverController struct {
	Drivers *services.DriverService
}

func NewDriverController(drivers *services.DriverService) *DriverController {
	return &DriverController{Drivers: drivers}
}

type createDriverReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// POST /admin/drivers
func (dc *DriverController) Create(c *gin.Context) {
	var req createDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := dc.Drivers.Create(req.FirstName, req.LastName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /admin/drivers/:id/inactivate
func (dc *DriverController) Inactivate(c *gin.Context) {
	d, err := dc.Drivers.Inactivate(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}
