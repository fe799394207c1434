package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/zecross-dev/hnefatafl/internal/game"
)

// Terminal two-player version of the game, played hot-seat on one
// keyboard. The server in cmd/server exposes the same engine over HTTP.
func main() {
	reader := bufio.NewReader(os.Stdin)

	size := askSize(reader)
	g, err := game.NewGame(size, "Player 1", "Player 2")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for {
		printBoard(&g.Board)
		p := g.CurrentPlayer()
		fmt.Printf("\n%s (%s) to move.\n", p.Name, p.Role)

		mv := askMove(reader, g)
		game.ApplyMove(g, mv)
		game.ApplyCaptures(g, mv)

		if game.IsGameOver(g) {
			printBoard(&g.Board)
			w := game.Winner(g)
			fmt.Printf("\nGame over! %s (%s) wins.\n", w.Name, w.Role)
			return
		}
		game.SwitchCurrentPlayer(g)
	}
}

func askSize(reader *bufio.Reader) game.BoardSize {
	for {
		fmt.Print("Select a board size, 11 or 13: ")
		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "11":
			return game.Little
		case "13":
			return game.Big
		default:
			fmt.Println("Invalid size, please retry.")
		}
	}
}

func askMove(reader *bufio.Reader, g *game.Game) game.Move {
	for {
		fmt.Print("Enter your move (e.g. F2 F5): ")
		line, _ := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Println("Format: start then destination, e.g. F2 F5.")
			continue
		}
		from, err := game.ParsePosition(parts[0], g.Board.Size)
		if err != nil {
			fmt.Println(err)
			continue
		}
		to, err := game.ParsePosition(parts[1], g.Board.Size)
		if err != nil {
			fmt.Println(err)
			continue
		}
		mv := game.Move{From: from, To: to}
		if reason := game.ValidateMove(g, mv); reason != game.MoveOK {
			fmt.Println("Invalid move:", reason)
			continue
		}
		return mv
	}
}

func printBoard(b *game.Board) {
	n := int(b.Size)
	fmt.Print("\n   ")
	for col := 0; col < n; col++ {
		fmt.Printf("%3d", col+1)
	}
	fmt.Println()
	for row := 0; row < n; row++ {
		fmt.Printf(" %c ", 'A'+row)
		for col := 0; col < n; col++ {
			cell := b.Cells[row][col]
			glyph := "."
			switch cell.Piece {
			case game.King:
				glyph = "K"
			case game.Shield:
				glyph = "D"
			case game.Sword:
				glyph = "A"
			default:
				switch cell.Type {
				case game.Castle:
					glyph = "x"
				case game.Fortress:
					glyph = "#"
				}
			}
			fmt.Printf("%3s", glyph)
		}
		fmt.Println()
	}
}
