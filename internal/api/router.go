package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ericogr/mythic-arena/internal/constants"
)

// NewRouter wires the public and authenticated routes.
func NewRouter(h *BattleHandler, sessions *SessionVerifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCharacters, h.ListCharacters)
		apiRoutes.GET(constants.RouteCreatures, h.ListCreatures)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(AuthRequired(sessions))

		protected.POST(constants.RouteBattles, h.CreateBattle)
		protected.GET(constants.RouteBattles, h.ListBattles)
		protected.GET(constants.RouteBattleByID, h.GetBattle)
	}
	return router
}
