package room

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zecross-dev/hnefatafl/internal/api/ws"
	"github.com/zecross-dev/hnefatafl/internal/game"
)

var (
	ErrRoomNotFound    = errors.New("match not found")
	ErrMatchFull       = errors.New("match already has two players")
	ErrMatchNotRunning = errors.New("match is not running")
	ErrUnknownPlayer   = errors.New("player does not belong to this match")
	ErrNotYourTurn     = errors.New("not your turn")
)

// RuleError carries the validator's reason for rejecting a move. The
// caller re-prompts; the engine never retries on its own.
type RuleError struct {
	Reason game.MoveReason
}

func (e *RuleError) Error() string {
	return e.Reason.String()
}

// Manager drives match lifecycle and the per-turn state machine on top
// of the rules engine.
type Manager struct {
	store Store
	saves Saves
	hub   *ws.Hub
	log   *zap.Logger

	defaultSize game.BoardSize
}

func NewManager(store Store, saves Saves, defaultSize game.BoardSize, hub *ws.Hub, log *zap.Logger) *Manager {
	if !defaultSize.Valid() {
		defaultSize = game.Little
	}
	return &Manager{store: store, saves: saves, hub: hub, log: log, defaultSize: defaultSize}
}

// CreateMatch opens a match with the creator in the attacker seat. The
// defender seat stays empty until Join.
func (m *Manager) CreateMatch(playerName string, size game.BoardSize) (*Room, error) {
	if size == 0 {
		size = m.defaultSize
	}
	g, err := game.NewGame(size, playerName, "")
	if err != nil {
		return nil, err
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Game:      g,
		Status:    StatusWaiting,
		CreatedAt: time.Now(),
	}
	r.PlayerIDs[0] = uuid.NewString()
	m.store.SaveRoom(r)
	m.log.Info("match created",
		zap.String("code", r.Code),
		zap.Int("size", int(size)))
	return r, nil
}

// Join seats the second player as the defender and starts the match.
// Returns the room and the joining player's seat id.
func (m *Manager) Join(code, playerName string) (*Room, string, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, "", ErrRoomNotFound
	}
	if r.Status != StatusWaiting || r.PlayerIDs[1] != "" {
		return nil, "", ErrMatchFull
	}
	if playerName == "" {
		playerName = "Player 2"
	}
	r.Game.Players[1].Name = playerName
	r.PlayerIDs[1] = uuid.NewString()
	r.Status = StatusPlaying
	m.store.SaveRoom(r)
	m.hub.Broadcast(code, "player-joined", gin.H{
		"name":  playerName,
		"board": r.Game.Board,
	})
	return r, r.PlayerIDs[1], nil
}

// Get looks up a live match by code.
func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// Play runs one full turn for playerID: validate, move, captures,
// terminal check, and only then the player switch. Rule rejections come
// back as *RuleError so the transport can show the reason.
func (m *Manager) Play(code, playerID string, mv game.Move) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Status != StatusPlaying {
		return nil, ErrMatchNotRunning
	}
	seat := r.seat(playerID)
	if seat < 0 {
		return nil, ErrUnknownPlayer
	}
	if seat != r.Game.Current {
		return nil, ErrNotYourTurn
	}

	if reason := game.ValidateMove(r.Game, mv); reason != game.MoveOK {
		return nil, &RuleError{Reason: reason}
	}
	game.ApplyMove(r.Game, mv)
	game.ApplyCaptures(r.Game, mv)

	// Terminal check belongs right after the capture phase, not at the
	// top of the next turn.
	if game.IsGameOver(r.Game) {
		r.Winner = game.Winner(r.Game)
		r.Status = StatusFinished
		m.store.SaveRoom(r)
		m.hub.Broadcast(code, "game-over", gin.H{
			"winner": r.Winner,
			"board":  r.Game.Board,
		})
		m.log.Info("match finished",
			zap.String("code", code),
			zap.String("winner", r.Winner.Name))
		return r, nil
	}

	game.SwitchCurrentPlayer(r.Game)
	m.store.SaveRoom(r)
	m.hub.Broadcast(code, "move", gin.H{
		"from":     game.FormatPosition(mv.From),
		"to":       game.FormatPosition(mv.To),
		"board":    r.Game.Board,
		"nextTurn": r.Game.CurrentPlayer().Role.String(),
	})
	return r, nil
}

// PlayText is the websocket entry point: coordinates arrive in
// letter+number notation.
func (m *Manager) PlayText(code, playerID, from, to string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	fp, err := game.ParsePosition(from, r.Game.Board.Size)
	if err != nil {
		return err
	}
	tp, err := game.ParsePosition(to, r.Game.Board.Size)
	if err != nil {
		return err
	}
	_, err = m.Play(code, playerID, game.Move{From: fp, To: tp})
	return err
}

// LegalMoves lists every legal move for the player whose turn it is.
func (m *Manager) LegalMoves(code string) ([]game.Move, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return game.LegalMoves(r.Game), nil
}

// SaveMatch stores the match under a named slot.
func (m *Manager) SaveMatch(code, name string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	if err := m.saves.Put(name, game.TakeSnapshot(r.Game)); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	m.log.Info("match saved", zap.String("code", code), zap.String("slot", name))
	return nil
}

// LoadMatch resurrects a saved snapshot as a fresh match with new seat
// ids and a new join code.
func (m *Manager) LoadMatch(name string) (*Room, error) {
	snap, err := m.saves.Get(name)
	if err != nil {
		return nil, err
	}
	g, err := game.RestoreSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Game:      g,
		Status:    StatusPlaying,
		CreatedAt: time.Now(),
	}
	r.PlayerIDs[0] = uuid.NewString()
	r.PlayerIDs[1] = uuid.NewString()
	m.store.SaveRoom(r)
	m.log.Info("match loaded", zap.String("slot", name), zap.String("code", r.Code))
	return r, nil
}

func (m *Manager) DeleteSave(name string) error {
	return m.saves.Delete(name)
}

func (m *Manager) ListSaves() ([]SaveInfo, error) {
	return m.saves.List()
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
