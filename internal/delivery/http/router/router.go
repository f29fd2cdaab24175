// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatsHandler        *handler.StatsHandler
	FanHandler          *handler.FanHandler
	ConversationHandler *handler.ConversationHandler
	QuestionHandler     *handler.QuestionHandler
	HandoffHandler      *handler.HandoffHandler
	GuardianHandler     *handler.GuardianHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	statsHandler        *handler.StatsHandler
	fanHandler          *handler.FanHandler
	conversationHandler *handler.ConversationHandler
	questionHandler     *handler.QuestionHandler
	handoffHandler      *handler.HandoffHandler
	guardianHandler     *handler.GuardianHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		statsHandler:        params.StatsHandler,
		fanHandler:          params.FanHandler,
		conversationHandler: params.ConversationHandler,
		questionHandler:     params.QuestionHandler,
		handoffHandler:      params.HandoffHandler,
		guardianHandler:     params.GuardianHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/stats", r.statsHandler.GetStats)

		api.GET("/fans", r.fanHandler.ListFans)
		api.POST("/fans", r.fanHandler.CreateFan)
		api.GET("/fans/:id", r.fanHandler.GetFan)
		api.PATCH("/fans/:id", r.fanHandler.UpdateFan)
		api.POST("/fans/:id/handles", r.fanHandler.RegisterHandle)

		api.GET("/conversations", r.conversationHandler.ListConversations)
		api.POST("/conversations", r.conversationHandler.CreateConversation)

		api.GET("/ai-questions", r.questionHandler.ListQuestions)
		api.POST("/ai-questions", r.questionHandler.AskQuestion)
		api.GET("/ai-questions/:id", r.questionHandler.GetQuestion)
		api.GET("/ai-questions/:id/qr", r.questionHandler.ShareQR)

		api.POST("/answer", r.questionHandler.Answer)

		api.POST("/handoff", r.handoffHandler.Stash)
		api.GET("/handoff/:ticket", r.handoffHandler.Redeem)

		api.GET("/guardian/flags", r.guardianHandler.ListFlags)
	}
}
