package bitboard

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash"
)

// zobristSquare holds one key per color per square. Keys are derived from
// the (color, square) pair so they do not depend on the board size.
var zobristSquare [2][MaxSquares]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	var buf [4]byte
	for c := 0; c < 2; c++ {
		for sq := 0; sq < MaxSquares; sq++ {
			binary.LittleEndian.PutUint16(buf[0:], uint16(c))
			binary.LittleEndian.PutUint16(buf[2:], uint16(sq))
			zobristSquare[c][sq] = xxhash.Sum64(buf[:])
		}
	}
}

// ComputeZobrist recalculates the occupancy hash from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		mask := b.occupancy[c]
		for mask != 0 {
			key ^= zobristSquare[c][popLSB(&mask)]
		}
	}
	return key
}

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

func popCount(mask uint64) int { return bits.OnesCount64(mask) }
