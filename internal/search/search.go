// Package search picks moves by exhaustive minimax over entity.Board values.
// X maximizes Board.Utility and O minimizes it.
package search

import (
	"github.com/rocketscienceinc/tris/internal/entity"
)

// Infinity bounds every reachable utility, whose magnitude is at most 10.
const Infinity = 1000

// searcher counts the nodes it expands.
type searcher struct {
	nodes int
}

// Minimax returns the game value of board and the successor that achieves it.
// A terminal board is returned as its own recommendation. Among equally
// valued successors the first one in Board.Successors order wins.
func Minimax(board entity.Board) (int, entity.Board) {
	var s searcher
	return s.minimax(board)
}

// MinimaxPruning is Minimax with alpha-beta pruning. It returns the same
// value and recommendation for every board.
func MinimaxPruning(board entity.Board) (int, entity.Board) {
	var s searcher
	return s.alphaBeta(board, -Infinity, Infinity)
}

// BestMove returns the successor the side to move should play.
func BestMove(board entity.Board) entity.Board {
	_, next := MinimaxPruning(board)
	return next
}

func (s *searcher) minimax(node entity.Board) (int, entity.Board) {
	s.nodes++

	children := node.Successors()
	if len(children) == 0 || node.IsTerminal() {
		return node.Utility(), node
	}

	switch node.Turn {
	case entity.PlayerX:
		best, option := -Infinity, node
		for _, child := range children {
			if value, _ := s.minimax(child); value > best {
				best, option = value, child
			}
		}
		return best, option

	default:
		best, option := Infinity, node
		for _, child := range children {
			if value, _ := s.minimax(child); value < best {
				best, option = value, child
			}
		}
		return best, option
	}
}

// alpha is the best value X can already force elsewhere, beta the best O can.
func (s *searcher) alphaBeta(node entity.Board, alpha, beta int) (int, entity.Board) {
	s.nodes++

	children := node.Successors()
	if len(children) == 0 || node.IsTerminal() {
		return node.Utility(), node
	}

	switch node.Turn {
	case entity.PlayerX:
		best, option := -Infinity, node
		for _, child := range children {
			if value, _ := s.alphaBeta(child, alpha, beta); value > best {
				best, option = value, child
			}

			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best, option

	default:
		best, option := Infinity, node
		for _, child := range children {
			if value, _ := s.alphaBeta(child, alpha, beta); value < best {
				best, option = value, child
			}

			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
		return best, option
	}
}
