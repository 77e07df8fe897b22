package router

import (
	"github.com/TomerBass/DogNames/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
}

func NewRouter(appModules *modules.AppModules) *Router {
	return &Router{modules: appModules}
}

func (rt *Router) Init(r *gin.Engine) {
	h := rt.modules.Dog.Handler

	r.GET("/", h.Root)

	api := r.Group("/api")
	api.GET("/search", h.SearchDogs)
	api.GET("/dogs", h.GetAllDogs)
	api.POST("/upload", h.UploadDog)
	api.DELETE("/dogs/:id", h.DeleteDog)
}
