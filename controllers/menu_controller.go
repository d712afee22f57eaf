package controllers

import (
	"net/http"

	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu?category=all|south-indian|kolhapuri
func (ctl *MenuController) Catalog(c *gin.Context) {
	items, err := ctl.Menu.ListCatalog(c.Query("category"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id/image
func (ctl *MenuController) Image(c *gin.Context) {
	item, err := ctl.Menu.Get(c.Param("id"))
	if err != nil || len(item.Image) == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Data(http.StatusOK, item.ImageType, item.Image)
}
