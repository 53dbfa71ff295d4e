// Package simplify detects layouts that are a smaller layout padded with
// redundant pieces.
//
// Two kinds of rewrites produce candidate smaller layouts:
//
//   - bridge compaction: an uphill followed by a straight (US) becomes SU,
//     a straight followed by a downhill (SD) becomes DS. The bridge keeps
//     its shape but its ramps move together.
//   - pair removal: two occurrences of matching patterns placed at
//     opposite headings (differing by 4) cancel out; removing both leaves a
//     closed loop. The pairs are (S, S), (RL, LR), (SS, UD) and (UD, UD).
//
// A layout is reducible when one of its candidates is already in the set of
// known layouts; Minimal drops every such layout.
package simplify

import (
	"iter"
	"slices"

	"github.com/jahodfra/IkeaTrainTrack/canon"
	"github.com/jahodfra/IkeaTrainTrack/geometry"
	"github.com/jahodfra/IkeaTrainTrack/piece"
)

// Rule rewrites one occurrence of Match into Replace.
type Rule struct {
	Match, Replace piece.Path
}

// Pair names two patterns that cancel at opposite headings.
type Pair struct {
	A, B piece.Path
}

// BridgeRules are the bridge compaction rewrites, in the order they are
// tried.
var BridgeRules = []Rule{
	{Match: "US", Replace: "SU"},
	{Match: "SD", Replace: "DS"},
}

// RemovalPairs are the cancelling patterns, in the order they are tried.
var RemovalPairs = []Pair{
	{A: "S", B: "S"},
	{A: "RL", B: "LR"},
	{A: "SS", B: "UD"},
	{A: "UD", B: "UD"},
}

// Occurrences returns every index i at which pattern starts in p, reading
// p circularly. Occurrences may overlap and may wrap past the end.
func Occurrences(p, pattern piece.Path) []int {
	n, m := p.Len(), pattern.Len()
	if m == 0 || m > n {
		return nil
	}
	var out []int
	for i := 0; i < n; i++ {
		ok := true
		for k := 0; k < m && ok; k++ {
			ok = p.At(i+k) == pattern.At(k)
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// replaceAt replaces the m pieces starting at i with r. An occurrence that
// wraps past the end is cut from the front of the result.
func replaceAt(p piece.Path, i, m int, r piece.Path) piece.Path {
	n := p.Len()
	wrap := max(i+m-n, 0)
	end := min(i+m, n)
	return p[wrap:i] + r + p[end:]
}

// Replacements applies rule at every occurrence in p. Results are not
// canonicalized.
func Replacements(p piece.Path, rule Rule) []piece.Path {
	var out []piece.Path
	for _, i := range Occurrences(p, rule.Match) {
		out = append(out, replaceAt(p, i, rule.Match.Len(), rule.Replace))
	}
	return out
}

// Removals deletes every non-overlapping pair of occurrences of pair.A and
// pair.B whose headings, taken before each occurrence, are opposite. When
// both patterns are equal each unordered pair is removed once. The
// remaining pieces keep their order; results are not canonicalized.
func Removals(p piece.Path, pair Pair) []piece.Path {
	n := p.Len()
	headings := geometry.Headings(p)
	as := Occurrences(p, pair.A)
	bs := Occurrences(p, pair.B)
	same := pair.A == pair.B

	var out []piece.Path
	removed := make([]bool, n)
	for _, a := range as {
		for _, b := range bs {
			if same && a >= b {
				continue
			}
			if piece.NormHeading(headings[a]-headings[b]) != 4 {
				continue
			}
			clear(removed)
			if !mark(removed, a, pair.A.Len()) || !mark(removed, b, pair.B.Len()) {
				continue // overlapping occurrences
			}
			kept := make([]byte, 0, n)
			for i := 0; i < n; i++ {
				if !removed[i] {
					kept = append(kept, p[i])
				}
			}
			out = append(out, piece.Path(kept))
		}
	}
	return out
}

// mark flags m indices from i (circularly) and reports false if any was
// already flagged.
func mark(removed []bool, i, m int) bool {
	n := len(removed)
	for k := 0; k < m; k++ {
		j := (i + k) % n
		if removed[j] {
			return false
		}
		removed[j] = true
	}
	return true
}

// Simplifications yields the canonical form of every candidate smaller
// layout of p: all bridge compactions first, then all pair removals. The
// sequence may repeat values and can be ranged over more than once.
// It panics with piece.ErrInvalidPiece before returning when p holds an
// unknown symbol.
func Simplifications(p piece.Path) iter.Seq[piece.Path] {
	p.MustValidate()
	return func(yield func(piece.Path) bool) {
		for _, rule := range BridgeRules {
			for _, q := range Replacements(p, rule) {
				if !yield(canon.Canonicalize(q)) {
					return
				}
			}
		}
		for _, pair := range RemovalPairs {
			for _, q := range Removals(p, pair) {
				if !yield(canon.Canonicalize(q)) {
					return
				}
			}
		}
	}
}

// Reducible reports whether some simplification of p, other than p itself,
// is in set. The set holds canonical paths.
func Reducible(p piece.Path, set map[piece.Path]struct{}) bool {
	self := canon.Canonicalize(p)
	for q := range Simplifications(p) {
		if q == self {
			continue
		}
		if _, ok := set[q]; ok {
			return true
		}
	}
	return false
}

// Minimal canonicalizes paths and keeps only those no other member
// simplifies to. The result is sorted. Like canon.Unique it panics with
// piece.ErrInvalidPiece on an unknown symbol.
func Minimal(paths []piece.Path) []piece.Path {
	unique := canon.Unique(paths)
	set := make(map[piece.Path]struct{}, len(unique))
	for _, p := range unique {
		set[p] = struct{}{}
	}
	return slices.DeleteFunc(unique, func(p piece.Path) bool {
		return Reducible(p, set)
	})
}
