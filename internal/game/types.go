package game

// BoardSize is the edge length of the square board. Only the two
// historical sizes are playable.
type BoardSize int

const (
	Little BoardSize = 11
	Big    BoardSize = 13
)

func (s BoardSize) Valid() bool {
	return s == Little || s == Big
}

// CellType classifies the terrain of a cell. It is fixed at board
// initialization and never changes during play.
type CellType int

const (
	Normal   CellType = iota
	Fortress          // corner escape cell, hostile capture anchor
	Castle            // center throne, hostile anchor only when empty
)

// PieceType is the occupant of a cell.
type PieceType int

const (
	None PieceType = iota
	Shield
	Sword
	King
)

type PlayerRole int

const (
	Attack PlayerRole = iota
	Defense
)

func (r PlayerRole) String() string {
	if r == Attack {
		return "attack"
	}
	return "defense"
}

type Cell struct {
	Type  CellType  `json:"type"`
	Piece PieceType `json:"piece"`
}

type Board struct {
	Size  BoardSize `json:"size"`
	Cells [][]Cell  `json:"cells"`
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

type Player struct {
	Name string     `json:"name"`
	Role PlayerRole `json:"role"`
}

// Game owns one board and two players. Current indexes into Players
// instead of pointing at one of them, so a Game value can be copied
// without dangling references.
type Game struct {
	Board   Board     `json:"board"`
	Players [2]Player `json:"players"`
	Current int       `json:"current"`
}

// NewGame builds a game with the canonical opening layout. The attacker
// always moves first.
func NewGame(size BoardSize, attackerName, defenderName string) (*Game, error) {
	b := Board{Size: size}
	if err := b.Allocate(); err != nil {
		return nil, err
	}
	b.Init()
	if attackerName == "" {
		attackerName = "Player 1"
	}
	if defenderName == "" {
		defenderName = "Player 2"
	}
	return &Game{
		Board: b,
		Players: [2]Player{
			{Name: attackerName, Role: Attack},
			{Name: defenderName, Role: Defense},
		},
		Current: 0,
	}, nil
}

func (g *Game) CurrentPlayer() *Player {
	return &g.Players[g.Current]
}
