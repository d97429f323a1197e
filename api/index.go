package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/config"
	"github.com/adiafa-dev/e-commerce-mvp/middleware"
	"github.com/adiafa-dev/e-commerce-mvp/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.InitLogger()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(middleware.RequestIDMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
