package controllers

import (
	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
	Hours       *services.HoursService
	Stats       *services.StatisticsService
}

func NewRestaurantController(restaurants *services.RestaurantService, hours *services.HoursService, stats *services.StatisticsService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, Hours: hours, Stats: stats}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	items, err := rc.Restaurants.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	d, err := rc.Restaurants.Detail(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /restaurants/:id/hours
func (rc *RestaurantController) GetHours(c *gin.Context) {
	hours, err := rc.Hours.List(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": hours})
}

// PUT /restaurants/:id/hours
func (rc *RestaurantController) UpdateHours(c *gin.Context) {
	var week []services.WeekdayHoursIn
	if err := c.ShouldBindJSON(&week); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := rc.Hours.Reconcile(c.Param("id"), week)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}

type contactInfoReq struct {
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ContactName *string `json:"contactName"`
}

// PUT /restaurants/:id/contact
func (rc *RestaurantController) UpdateContact(c *gin.Context) {
	var req contactInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := rc.Restaurants.UpdateContactInfo(c.Param("id"), req.Phone, req.Email, req.ContactName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

type addressReq struct {
	Street *string `json:"street"`
	City   *string `json:"city"`
	State  *string `json:"state"`
	Zip    *string `json:"zip"`
}

// PUT /restaurants/:id/address
func (rc *RestaurantController) UpdateAddress(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := rc.Restaurants.UpdateAddress(c.Param("id"), req.Street, req.City, req.State, req.Zip)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

type pictureReq struct {
	PictureRef string `json:"pictureRef" binding:"required"`
}

// PUT /restaurants/:id/profile-picture
func (rc *RestaurantController) UpdateProfilePicture(c *gin.Context) {
	var req pictureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := rc.Restaurants.UpdateProfilePicture(c.Param("id"), &req.PictureRef)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /restaurants/:id/profile-picture
func (rc *RestaurantController) RemoveProfilePicture(c *gin.Context) {
	r, err := rc.Restaurants.UpdateProfilePicture(c.Param("id"), nil)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /admin/restaurants/:id
func (rc *RestaurantController) Delete(c *gin.Context) {
	if err := rc.Restaurants.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /admin/restaurants/:id/statistics
func (rc *RestaurantController) Statistics(c *gin.Context) {
	stats, err := rc.Stats.RestaurantStatistics(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}
