package controllers

import (
	"github.com/Ashitosh2004/hotellucky/i18n"
	"github.com/Ashitosh2004/hotellucky/pkg/resp"

	"github.com/gin-gonic/gin"
)

type I18nController struct{}

func NewI18nController() *I18nController { return &I18nController{} }

// GET /i18n/:lang returns the full string table for one language.
func (ctl *I18nController) Table(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.ValidLanguage(lang) {
		resp.BadRequest(c, "unsupported language: "+lang)
		return
	}
	resp.OK(c, gin.H{"language": lang, "strings": i18n.Table(lang)})
}
