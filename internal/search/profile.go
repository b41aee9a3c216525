package search

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tris/internal/entity"
)

type Algorithm string

const (
	AlgorithmMinimax Algorithm = "minimax"
	AlgorithmPruning Algorithm = "alpha-beta"
)

// Report describes a single search run.
type Report struct {
	Algorithm Algorithm
	Value     int
	Next      entity.Board
	Nodes     int
	Elapsed   time.Duration
}

// Profile runs one search with the given algorithm and counts the visited nodes.
func Profile(algorithm Algorithm, board entity.Board) (Report, error) {
	var (
		s     searcher
		value int
		next  entity.Board
	)

	start := time.Now()
	switch algorithm {
	case AlgorithmMinimax:
		value, next = s.minimax(board)
	case AlgorithmPruning:
		value, next = s.alphaBeta(board, -Infinity, Infinity)
	default:
		return Report{}, fmt.Errorf("unknown search algorithm %q", algorithm)
	}

	return Report{
		Algorithm: algorithm,
		Value:     value,
		Next:      next,
		Nodes:     s.nodes,
		Elapsed:   time.Since(start),
	}, nil
}
