package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/de0k/mobcard-server/internal/middleware"
)

type RouterDeps struct {
	Auth     *AuthHandler
	Skins    *SkinHandler
	Contacts *ContactHandler
	Geo      *GeoHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CORS(), gzip.Gzip(gzip.DefaultCompression))

	router.POST("/signup", deps.Auth.Signup)
	router.POST("/login", deps.Auth.Login)
	router.POST("/delete_account", deps.Auth.DeleteAccount)

	api := router.Group("/api")
	api.POST("/saveTemplateSelection", deps.Skins.SaveSelection)
	api.GET("/get-user-skin", deps.Skins.GetSelection)
	api.POST("/contact", deps.Contacts.Save)
	api.GET("/contact/:email", deps.Contacts.Get)
	api.GET("/get-coordinates", deps.Geo.GetCoordinates)

	return router
}
