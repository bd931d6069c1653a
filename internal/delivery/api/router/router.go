// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafemap/internal/delivery/api/middleware"
	"cafemap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CafeHandler   *handler.CafeHandler
	ReviewHandler *handler.ReviewHandler
	AdminHandler  *handler.AdminHandler
	OperatorAuth  *middleware.OperatorAuth
}

// router holds all the handlers that need to be registered.
type router struct {
	cafeHandler   *handler.CafeHandler
	reviewHandler *handler.ReviewHandler
	adminHandler  *handler.AdminHandler
	operatorAuth  *middleware.OperatorAuth
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cafeHandler:   params.CafeHandler,
		reviewHandler: params.ReviewHandler,
		adminHandler:  params.AdminHandler,
		operatorAuth:  params.OperatorAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/features", r.cafeHandler.ListFeatures)

	// Public catalog; an operator token only widens visibility
	cafesGroup := api.Group("/cafes")
	cafesGroup.Use(r.operatorAuth.Optional)
	{
		cafesGroup.GET("", r.cafeHandler.ListCafes)
		cafesGroup.POST("/submit", r.cafeHandler.SubmitCafe)
		cafesGroup.GET("/map/markers", r.cafeHandler.ListMarkers)
		cafesGroup.GET("/:slug", r.cafeHandler.GetCafe)
		cafesGroup.GET("/:slug/qrcode", r.cafeHandler.GetCafeQRCode)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("/cafe/:cafeId", r.reviewHandler.ListReviews)
		reviewsGroup.POST("", r.reviewHandler.SubmitReview)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.operatorAuth.RequireOperator)
	{
		adminGroup.GET("/cafes", r.adminHandler.ListAllCafes)
		adminGroup.POST("/cafes/verify-all", r.adminHandler.VerifyAll)
		adminGroup.PATCH("/cafes/:id", r.adminHandler.EditCafe)
		adminGroup.DELETE("/cafes/:id", r.adminHandler.DeleteCafe)
		adminGroup.PATCH("/cafes/:id/verify", r.adminHandler.VerifyCafe)
		adminGroup.PATCH("/cafes/:id/feature", r.adminHandler.FeatureCafe)
		adminGroup.DELETE("/cafes/:id/feature", r.adminHandler.UnfeatureCafe)
	}
}
