package chesscore

import "golang.org/x/sync/errgroup"

// Perft counts the leaf nodes reached by exhaustively enumerating legal
// move sequences to depth plies from board's position. It is the
// reference correctness check for move generation (see package tests).
func Perft(board *Board, depth int) uint64 {
	Pregenerate()
	return perftRec(board, depth)
}

func perftRec(board *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	g := NewMoveGen(board)
	var nodes uint64
	for {
		mv := g.NextKeeping()
		if mv == MoveEnd {
			break
		}
		nodes += perftRec(board, depth-1)
		UnmakeMove(board, mv)
	}
	return nodes
}

// PerftDivide breaks down Perft's leaf count by root move.
func PerftDivide(board *Board, depth int) map[Move]uint64 {
	Pregenerate()
	result := make(map[Move]uint64)
	g := NewMoveGen(board)
	for {
		mv := g.NextKeeping()
		if mv == MoveEnd {
			break
		}
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = perftRec(board, depth-1)
		}
		result[mv] = n
		UnmakeMove(board, mv)
	}
	return result
}

// PerftDivideConcurrent is PerftDivide with each root move's subtree
// explored on its own goroutine over its own Board copy, since move
// generation mutates the Board it is given. Board holds no pointers, so a plain
// value copy after the root move is applied is a full, independent
// position snapshot.
func PerftDivideConcurrent(board *Board, depth int) (map[Move]uint64, error) {
	Pregenerate()

	type rootItem struct {
		mv  Move
		pos Board
	}
	var items []rootItem

	g := NewMoveGen(board)
	for {
		mv := g.NextKeeping()
		if mv == MoveEnd {
			break
		}
		items = append(items, rootItem{mv: mv, pos: *board})
		UnmakeMove(board, mv)
	}

	results := make([]uint64, len(items))
	var eg errgroup.Group
	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			pos := item.pos
			if depth <= 1 {
				results[i] = 1
			} else {
				results[i] = perftRec(&pos, depth-1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Move]uint64, len(items))
	for i, item := range items {
		out[item.mv] = results[i]
	}
	return out, nil
}
