package controllers

import (
	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	Settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{Settings: settings}
}

// GET /settings/qr (public, customers see the payment QR)
func (ctl *SettingController) GetQRCode(c *gin.Context) {
	url, err := ctl.Settings.QRCodeURL()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": url})
}

type UpdateQRRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// PUT /admin/settings/qr
func (ctl *SettingController) UpdateQRCode(c *gin.Context) {
	var req UpdateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	setting, err := ctl.Settings.UpdateQRCode(req.ImageURL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, setting)
}
