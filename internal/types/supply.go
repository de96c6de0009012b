package types

import "sync/atomic"

// VarSupply hands out unique type-variable ids. The counter is a
// monotonic atomic so ids stay unique even if an embedder runs inference
// on multiple goroutines; the inferencer itself is single-threaded.
type VarSupply struct {
	next atomic.Uint32
}

// NewVarSupply creates a supply whose first id is start. Tests seed
// supplies so fresh-variable assignment is reproducible.
func NewVarSupply(start uint32) *VarSupply {
	s := &VarSupply{}
	s.next.Store(start)
	return s
}

// FreshID returns the next unused type-variable id.
func (s *VarSupply) FreshID() uint32 {
	return s.next.Add(1) - 1
}

// Fresh returns a brand new type variable.
func (s *VarSupply) Fresh() *TVar {
	return &TVar{ID: s.FreshID()}
}

// defaultSupply backs the package-level helpers. It lives for the whole
// process and is never reset.
var defaultSupply VarSupply

// DefaultSupply returns the process-wide supply.
func DefaultSupply() *VarSupply {
	return &defaultSupply
}

// FreshVar draws a type variable from the process-wide supply.
func FreshVar() *TVar {
	return defaultSupply.Fresh()
}
