package model

import (
	"strings"

	"github.com/prysmaticlabs/go-bitfield"
)

// Vector is a fixed-width 0/1 membership vector over a path universe.
// Vectors combined with each other must have the same length; mixing lengths
// is a programming error and panics.
type Vector struct {
	bits bitfield.Bitlist
}

// NewVector returns an all-zero vector of width n.
func NewVector(n int) Vector {
	if n < 0 {
		panic("model: vector width must not be negative")
	}

	return Vector{bits: bitfield.NewBitlist(uint64(n))}
}

// AllOnes returns a vector of width n with every bit set. It is the identity
// for And and the intersection vector of an empty group.
func AllOnes(n int) Vector {
	v := NewVector(n)
	for i := range n {
		v.bits.SetBitAt(uint64(i), true)
	}

	return v
}

// Len returns the vector width.
func (v Vector) Len() int {
	if v.bits == nil {
		return 0
	}

	return int(v.bits.Len())
}

// Get reports whether bit i is set.
func (v Vector) Get(i int) bool {
	v.checkIndex(i)
	return v.bits.BitAt(uint64(i))
}

// Set sets bit i to 1.
func (v Vector) Set(i int) {
	v.checkIndex(i)
	v.bits.SetBitAt(uint64(i), true)
}

// Count returns the number of set bits.
func (v Vector) Count() int {
	if v.bits == nil {
		return 0
	}

	return int(v.bits.Count())
}

// And returns a new vector holding v AND o.
func (v Vector) And(o Vector) Vector {
	out, err := v.bits.And(o.bits)
	if err != nil {
		panic("model: vector width mismatch: " + err.Error())
	}

	return Vector{bits: out}
}

// Dot returns the dot product of two 0/1 vectors, i.e. the number of
// positions set in both.
func (v Vector) Dot(o Vector) int {
	return v.And(o).Count()
}

// Hamming returns the number of positions where v and o differ.
func (v Vector) Hamming(o Vector) int {
	// |a XOR b| = |a OR b| - |a AND b|
	return v.UnionCount(o) - v.Dot(o)
}

// UnionCount returns the number of positions set in v or o.
func (v Vector) UnionCount(o Vector) int {
	out, err := v.bits.Or(o.bits)
	if err != nil {
		panic("model: vector width mismatch: " + err.Error())
	}

	return int(out.Count())
}

// Indices returns the positions of the set bits in ascending order.
func (v Vector) Indices() []int {
	indices := make([]int, 0, v.Count())
	for i := range v.Len() {
		if v.bits.BitAt(uint64(i)) {
			indices = append(indices, i)
		}
	}

	return indices
}

// Equal reports whether both vectors have the same width and bits.
func (v Vector) Equal(o Vector) bool {
	if v.Len() != o.Len() {
		return false
	}

	for i := range v.Len() {
		if v.bits.BitAt(uint64(i)) != o.bits.BitAt(uint64(i)) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v.bits == nil {
		return NewVector(0)
	}

	out := make(bitfield.Bitlist, len(v.bits))
	copy(out, v.bits)

	return Vector{bits: out}
}

// String renders the vector as "[1,0,1]".
func (v Vector) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i := range v.Len() {
		if i > 0 {
			b.WriteByte(',')
		}

		if v.bits.BitAt(uint64(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	b.WriteByte(']')

	return b.String()
}

func (v Vector) checkIndex(i int) {
	if i < 0 || i >= v.Len() {
		panic("model: vector index out of range")
	}
}
