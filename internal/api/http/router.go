package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/zecross-dev/hnefatafl/internal/api/ws"
	"github.com/zecross-dev/hnefatafl/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- MATCH ENDPOINTS ---
	r.POST("/create-match", CreateMatchHandler(rm))
	r.POST("/join-match", JoinMatchHandler(rm))
	r.GET("/match", MatchStateHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/move", MoveHandler(rm))
	r.GET("/possible-moves", PossibleMovesHandler(rm))

	// --- SAVE ENDPOINTS ---
	r.POST("/save-game", SaveGameHandler(rm))
	r.POST("/load-game", LoadGameHandler(rm))
	r.GET("/saves", ListSavesHandler(rm))
	r.POST("/delete-save", DeleteSaveHandler(rm))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
