package mir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case SymbolType:
		return strings.Compare(a.Name, b.Name)
	case FunctionType:
		if c := strings.Compare(a.Head, b.Head); c != 0 {
			return c
		}
		return compareArgs(a, b)
	}
	return 0
}

// Equal reports whether a and b are the same tree, number representation
// included: the integer 1 and the float 1.0 differ.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Big < Rat < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	switch {
	case a.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Big != nil:
		return a.Big.Cmp(b.Big)
	case a.Rat != nil:
		return a.Rat.Cmp(b.Rat)
	case a.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.Big != nil:
		return 1
	case n.Rat != nil:
		return 2
	case n.Float64 != nil:
		return 3
	}
	return 4
}

func compareArgs(a, b *Node) int {
	lenA := len(a.Args)
	lenB := len(b.Args)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Args[i], b.Args[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
