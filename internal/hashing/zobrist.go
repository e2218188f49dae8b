// Package hashing computes Zobrist keys for positions and stores results
// keyed by them, so work repeated on transposed positions can be reused.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobrist holds one random key per feature of a position. The seed is
// fixed so keys are stable across runs.
var zobrist = newKeys(rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9)))

type keys struct {
	pieces    [2][chess.NumKinds][numSquares]uint64
	whiteMove uint64
	castling  [2][3]uint64 // indexed by colour and CastleSide
	enPassant [chess.BoardSize]uint64
}

func newKeys(rng *rand.Rand) *keys {
	k := &keys{}
	for c := range k.pieces {
		for kind := range k.pieces[c] {
			for sq := range k.pieces[c][kind] {
				k.pieces[c][kind][sq] = rng.Uint64()
			}
		}
	}
	k.whiteMove = rng.Uint64()
	for c := range k.castling {
		for side := range k.castling[c] {
			k.castling[c][side] = rng.Uint64()
		}
	}
	for col := range k.enPassant {
		k.enPassant[col] = rng.Uint64()
	}
	return k
}

// Key returns the Zobrist key of pos with toMove to play. Two positions
// get the same key when their placement, side to move, castling rights
// and en-passant file agree.
func Key(pos *engine.Position, toMove chess.Colour) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := pos.Board.PieceAt(chess.Square{Row: row, Col: col})
			if p == nil {
				continue
			}
			h ^= zobrist.pieces[p.Colour()][p.Kind()][row*chess.BoardSize+col]
		}
	}

	if toMove == chess.White {
		h ^= zobrist.whiteMove
	}
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, side := range []chess.CastleSide{chess.KingSide, chess.QueenSide} {
			if engine.HasCastlingRight(pos.Board, colour, side) {
				h ^= zobrist.castling[colour][side]
			}
		}
	}
	if target, ok := pos.EnPassantTarget(); ok {
		h ^= zobrist.enPassant[target.Col]
	}
	return h
}
