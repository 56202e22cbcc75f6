package routes

import (
	"probuilder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin         = "/admin"
	PathLogout        = "/logout"
	PathAcceptRequest = "/accept_request/:id"
	PathDeleteRequest = "/delete_request/:id"
	PathProjectImage  = "/admin/requests/:id/image"
)

func addSiteRoutes(router *gin.Engine, h *handlers.QuoteRequestHandler) {
	router.GET("/", h.Index)
	router.POST("/", h.SubmitQuoteRequest)
	router.GET("/remodelacao", h.Remodelacao)
	router.GET("/pintura", h.Pintura)
}

func addAdminRoutes(router *gin.Engine, h *handlers.AdminHandler) {
	router.GET(PathAdmin, h.Panel)
	router.POST(PathAdmin, h.Login)
	router.GET(PathLogout, h.Logout)
	router.POST(PathAcceptRequest, h.AcceptRequest)
	router.POST(PathDeleteRequest, h.DeleteRequest)
	router.GET(PathProjectImage, h.ProjectImage)
}
