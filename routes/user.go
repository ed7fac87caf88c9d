package routes

import (
	"debategame/controllers"

	"github.com/gin-gonic/gin"
)

func CreateUserRouteHandler(ctx *gin.Context) {
	controllers.CreateUser(ctx)
}

func GetUserRouteHandler(ctx *gin.Context) {
	controllers.GetUser(ctx)
}
