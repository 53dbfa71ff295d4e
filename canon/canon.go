// Package canon reduces a closed piece sequence to a unique representative
// of its symmetry class.
//
// Two sequences describe the same physical layout when one is obtained from
// the other by any combination of
//
//	shift:   choosing a different starting piece
//	mirror:  swapping TurnLeft and TurnRight
//	reverse: reading the sequence backwards
//
// The canonical form is the lexicographically smallest of the 4·n images.
// Each of the four base images is reduced to its least rotation with Booth's
// algorithm, so Canonicalize runs in O(n).
//
// Canonicalize and the functions built on it panic with
// piece.ErrInvalidPiece when a path holds an unknown symbol.
package canon

import (
	"slices"
	"strings"

	"github.com/jahodfra/IkeaTrainTrack/piece"
)

var mirrorReplacer = strings.NewReplacer("R", "L", "L", "R")

// Mirror swaps TurnLeft and TurnRight, leaving other pieces unchanged.
func Mirror(p piece.Path) piece.Path {
	return piece.Path(mirrorReplacer.Replace(string(p)))
}

// Reverse returns p read backwards.
func Reverse(p piece.Path) piece.Path {
	b := []byte(p)
	slices.Reverse(b)
	return piece.Path(b)
}

// Shift returns p starting at index k (wrapping, negative k allowed).
func Shift(p piece.Path, k int) piece.Path {
	n := len(p)
	if n == 0 {
		return p
	}
	k %= n
	if k < 0 {
		k += n
	}
	return p[k:] + p[:k]
}

// bases returns the four shift-free images of p.
func bases(p piece.Path) [4]piece.Path {
	m := Mirror(p)
	return [4]piece.Path{p, m, Reverse(p), Reverse(m)}
}

// Images returns all 4·n images of p, including duplicates.
func Images(p piece.Path) []piece.Path {
	out := make([]piece.Path, 0, 4*len(p))
	for _, b := range bases(p) {
		for k := range len(b) {
			out = append(out, Shift(b, k))
		}
	}
	return out
}

// Canonicalize returns the lexicographically smallest image of p.
// Complexity: O(n).
func Canonicalize(p piece.Path) piece.Path {
	p.MustValidate()
	if len(p) == 0 {
		return p
	}
	var best piece.Path
	for i, b := range bases(p) {
		r := Shift(b, leastRotation(string(b)))
		if i == 0 || r < best {
			best = r
		}
	}
	return best
}

// IsCanonical reports whether p is already in canonical form.
func IsCanonical(p piece.Path) bool { return Canonicalize(p) == p }

// Equivalent reports whether a and b describe the same layout.
func Equivalent(a, b piece.Path) bool {
	return len(a) == len(b) && Canonicalize(a) == Canonicalize(b)
}

// Unique canonicalizes every path and returns the distinct forms, sorted.
func Unique(paths []piece.Path) []piece.Path {
	seen := make(map[piece.Path]struct{}, len(paths))
	out := make([]piece.Path, 0, len(paths))
	for _, p := range paths {
		c := Canonicalize(p)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// leastRotation returns the start index of the lexicographically minimal
// rotation of s (Booth's algorithm).
// Time Complexity: O(n).
func leastRotation(s string) int {
	n := len(s)           // original length
	doubled := s + s      // every rotation is a window of length n
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1 // no match yet
	}
	k := 0                     // start of the best rotation so far
	for j := 1; j < 2*n; j++ { // scan the doubled string
		i := f[j-k-1] // failure link lookup
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] { // smaller symbol found
				k = j - i - 1 // move the candidate
			}
			i = f[i] // follow the failure link
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] { // smaller than the candidate start
				k = j // restart the candidate here
			}
			f[j-k] = -1 // reset the link at the new offset
		} else {
			f[j-k] = i + 1 // extend the match
		}
	}
	return k % n // k may point into the second copy
}
