package board

// Zobrist hashing (spec §4.2 / C2). Z is a fixed, deterministically seeded
// random table indexed [row][col][color-1], folded with XOR over the
// stones on the board. Place and Undo use the same XOR update: XOR is its
// own inverse, so "apply" and "remove" are the identical operation.
//
// Grounded on the teacher's Position.Hash field (internal/board/position.go
// in hailam-chessplay, a plain incrementally-updated uint64) — the table
// shape here is Renju-specific (15x15x2, no castling/en-passant/side-to-
// move salt folded permanently into the table) since chess's Zobrist key
// also XORs castling rights and en-passant file, which have no Renju
// analogue.

// splitmix64 is a fast, fixed-seed PRNG used only to fill Z once at
// package init; it has no role in search beyond seeding the table.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

// Z[row][col][color-1], color-1 because Empty (0) never contributes.
var Z [Size][Size][2]uint64

// SideSalt is XORed in only by callers that need a cache key
// distinguishing side-to-move (spec §3: PositionHash's "optional side-to-
// move salt when used as a cache key").
var SideSalt [2]uint64

func init() {
	rng := &splitmix64{state: 0x52656e6a754861}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			Z[r][c][0] = rng.next()
			Z[r][c][1] = rng.next()
		}
	}
	SideSalt[0] = rng.next()
	SideSalt[1] = rng.next()
}

// colorIndex maps Black/White to the 0/1 slot in Z. Calling it with Empty
// is a programmer error (the board never hashes an empty cell).
func colorIndex(c Color) int {
	if c == Black {
		return 0
	}
	return 1
}

// Compute folds XOR over every stone currently on b. Used to establish
// the initial hash of a position; after that, callers should track the
// hash incrementally via Update rather than recomputing from scratch.
func Compute(b *Board) uint64 {
	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if color := b.At(r, c); color != Empty {
				h ^= Z[r][c][colorIndex(color)]
			}
		}
	}
	return h
}

// Update applies (or, equivalently, removes) the contribution of placing
// color at (r,c). Because XOR is self-inverse, the exact same call both
// places and undoes a stone: Update(Update(h, r, c, color), r, c, color)
// == h (spec §8 property 3).
func Update(h uint64, r, c int, color Color) uint64 {
	return h ^ Z[r][c][colorIndex(color)]
}

// WithSide folds in the side-to-move salt, for callers (e.g. the
// forbidden-move cache) that need a hash distinguishing which side is to
// move at an otherwise-identical board.
func WithSide(h uint64, toMove Color) uint64 {
	return h ^ SideSalt[colorIndex(toMove)]
}
