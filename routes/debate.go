package routes

import (
	"debategame/controllers"

	"github.com/gin-gonic/gin"
)

func CreatePrivateDebateRouteHandler(ctx *gin.Context) {
	controllers.CreatePrivateDebate(ctx)
}

func GetPrivateDebateRouteHandler(ctx *gin.Context) {
	controllers.GetDebate(ctx)
}

func SubmitPrivateArgumentRouteHandler(ctx *gin.Context) {
	controllers.SubmitPrivateArgument(ctx)
}

func CreatePublicDebateRouteHandler(ctx *gin.Context) {
	controllers.CreatePublicDebate(ctx)
}

func GetPublicDebateRouteHandler(ctx *gin.Context) {
	controllers.GetDebate(ctx)
}

func SubmitPublicArgumentRouteHandler(ctx *gin.Context) {
	controllers.SubmitPublicArgument(ctx)
}
