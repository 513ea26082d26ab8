package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// tokenizer, host-facing
	router.POST(TokenizeURL, service.tokenizeText)
	router.POST(TokenizeWordURL, service.tokenizeWordAt)

	// selection buffer
	router.POST(SelectionsURL, service.addSelection)
	router.DELETE(SelectionsURL+"/:index", service.removeSelection)
	router.DELETE(SelectionsURL, service.clearSelections)
	router.GET(SelectionPreviewURL, service.getPreview)

	// pattern list, positional handles
	router.POST(PatternsURL, service.buildPattern)
	router.GET(PatternsURL, service.getPatterns)
	router.DELETE(PatternsURL+"/:index", service.deletePattern)
	router.POST(PatternsURL+"/:index/test", service.testPattern)

	server.Handler = router
	service.router = router
}
