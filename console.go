package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	eng "github.com/oliverans/chesscore/chesscore"
)

func main() {
	consoleLoop()
}

func consoleLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	board := eng.StartingPosition()
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit":
			return
		case "position":
			posScanner := bufio.NewScanner(strings.NewReader(line))
			posScanner.Split(bufio.ScanWords)
			posScanner.Scan() // skip the first token
			if !posScanner.Scan() {
				fmt.Println("info string Malformed position command")
				continue
			}
			switch strings.ToLower(posScanner.Text()) {
			case "startpos":
				board = eng.StartingPosition()
				posScanner.Scan() // advance to leave the scanner in a consistent state
			case "fen":
				fenstr := ""
				for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
					fenstr += posScanner.Text() + " "
				}
				fenstr = strings.TrimSpace(fenstr)
				if fenstr == "" {
					fmt.Println("info string Invalid fen position")
					continue
				}
				parsed, err := eng.FromFEN(fenstr)
				if err != nil {
					fmt.Println("info string FromFEN error:", err)
					continue
				}
				board = parsed
			default:
				fmt.Println("info string Invalid position subcommand")
				continue
			}
			if strings.ToLower(posScanner.Text()) != "moves" {
				continue
			}
			for posScanner.Scan() {
				moveStr := strings.ToLower(posScanner.Text())
				mv, err := eng.MoveFromStr(moveStr, &board)
				if err != nil || !mv.IsLegalOn(&board) {
					fmt.Println("info string illegal move", moveStr, "for position", board.ToFEN())
					continue
				}
				eng.MakeMove(&board, mv)
			}
		case "move":
			if len(tokens) < 2 {
				fmt.Println("info string move requires an algebraic argument")
				continue
			}
			mv, err := eng.MoveFromStr(strings.ToLower(tokens[1]), &board)
			if err != nil || !mv.IsLegalOn(&board) {
				fmt.Println("info string illegal move", tokens[1])
				continue
			}
			eng.MakeMove(&board, mv)
		case "moves":
			g := eng.NewMoveGen(&board)
			for {
				mv := g.Next()
				if mv == eng.MoveEnd {
					break
				}
				fmt.Println(mv.String())
			}
		case "fen":
			fmt.Println(board.ToFEN())
		case "status":
			fmt.Println(statusLine(&board))
		default:
			fmt.Println("info string Unknown command:", line)
		}
	}
}

func statusLine(board *eng.Board) string {
	g := eng.NewMoveGen(board)
	anyMove := false
	for g.Next() != eng.MoveEnd {
		anyMove = true
	}
	switch {
	case g.IsCheckmate():
		return "checkmate"
	case g.IsStalemate():
		return "stalemate"
	case !anyMove:
		return "no legal moves"
	case eng.InCheck(board, board.SideToMove()):
		return "check"
	default:
		return "normal"
	}
}
