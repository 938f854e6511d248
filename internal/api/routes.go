package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/controller"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, ctl *controller.Controller) {
	r.POST("/login", LoginHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/questions", ctl.CreateQuestionHandler)
		auth.GET("/questions", ctl.ListQuestionsHandler)
		auth.POST("/questions/:id/answers", ctl.CreateAnswerHandler)
		auth.POST("/questions/:id/answers/:answer_id/upvote", ctl.UpvoteAnswerHandler)
		auth.POST("/questions/:id/answers/:answer_id/correct", ctl.SetCorrectAnswerHandler)
		auth.GET("/balances/:account", ctl.GetBalanceHandler)
	}
}
