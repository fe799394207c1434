package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zecross-dev/hnefatafl/internal/game"
	"github.com/zecross-dev/hnefatafl/internal/room"
)

// @Summary Create a new match
// @Description Opens a match with the caller in the attacker seat and returns the join code
// @Tags Match
// @Accept json
// @Produce json
// @Param request body http.CreateMatchRequest true "Creator info"
// @Success 200 {object} map[string]interface{}
// @Router /create-match [post]
func CreateMatchHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMatchRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx, err := rm.CreateMatch(req.PlayerName, game.BoardSize(req.BoardSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":     rx.Code,
			"playerId": rx.PlayerIDs[0],
			"match":    rx,
		})
	}
}

// @Summary Join a match
// @Description Seats the second player as the defender and starts the match
// @Tags Match
// @Accept json
// @Produce json
// @Param request body http.JoinMatchRequest true "Join info"
// @Success 200 {object} map[string]interface{}
// @Router /join-match [post]
func JoinMatchHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinMatchRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		rx, playerID, err := rm.Join(req.Code, req.PlayerName)
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": playerID, "match": rx})
	}
}

// @Summary Get match state
// @Description Returns the full board (terrain and occupant per cell) for rendering
// @Tags Match
// @Produce json
// @Param code query string true "Match code"
// @Success 200 {object} map[string]interface{}
// @Router /match [get]
func MatchStateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": rx, "snapshot": game.TakeSnapshot(rx.Game)})
	}
}

// @Summary Play a move
// @Description Submits one move in letter+number notation for the player whose turn it is
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.Code)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		from, err := game.ParsePosition(req.From, rx.Game.Board.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		to, err := game.ParsePosition(req.To, rx.Game.Board.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, err = rm.Play(req.Code, req.PlayerID, game.Move{From: from, To: to})
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"match":  rx,
			"winner": rx.Winner,
		})
	}
}

// @Summary List legal moves
// @Description Returns every legal move for the player whose turn it is
// @Tags Game
// @Produce json
// @Param code query string true "Match code"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		moves, err := rm.LegalMoves(c.Query("code"))
		if err != nil {
			status(c, err)
			return
		}
		boxes := make([]MoveBox, 0, len(moves))
		for _, mv := range moves {
			boxes = append(boxes, MoveBox{
				From: game.FormatPosition(mv.From),
				To:   game.FormatPosition(mv.To),
			})
		}
		c.JSON(http.StatusOK, gin.H{"moves": boxes})
	}
}

// @Summary Save a match
// @Description Writes the match state into a named save slot (at most five slots)
// @Tags Save
// @Accept json
// @Produce json
// @Param request body http.SaveRequest true "Save data"
// @Success 200 {object} map[string]interface{}
// @Router /save-game [post]
func SaveGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and name required"})
			return
		}
		if err := rm.SaveMatch(req.Code, req.Name); err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Load a saved match
// @Description Resumes a save slot as a fresh match with new seat ids
// @Tags Save
// @Accept json
// @Produce json
// @Param request body http.LoadRequest true "Slot name"
// @Success 200 {object} map[string]interface{}
// @Router /load-game [post]
func LoadGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoadRequest
		if err := c.BindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		rx, err := rm.LoadMatch(req.Name)
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":      rx.Code,
			"playerIds": rx.PlayerIDs,
			"match":     rx,
		})
	}
}

// @Summary List save slots
// @Tags Save
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /saves [get]
func ListSavesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		saves, err := rm.ListSaves()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saves": saves})
	}
}

// @Summary Delete a save slot
// @Tags Save
// @Accept json
// @Produce json
// @Param request body http.DeleteSaveRequest true "Slot name"
// @Success 200 {object} map[string]interface{}
// @Router /delete-save [post]
func DeleteSaveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteSaveRequest
		if err := c.BindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if err := rm.DeleteSave(req.Name); err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// status maps manager errors onto HTTP codes. Rule rejections stay 400:
// they are expected outcomes, not faults.
func status(c *gin.Context, err error) {
	var rule *room.RuleError
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, room.ErrNotYourTurn), errors.Is(err, room.ErrUnknownPlayer):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &rule):
		c.JSON(http.StatusBadRequest, gin.H{"error": rule.Error(), "reason": int(rule.Reason)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
