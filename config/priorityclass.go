package config

import "github.com/katalvlaran/c2ic/cstate"

// canonicalMonotone enumerates the four priority permutations treated
// as monotone-submodular: those whose top two ranks are exactly
// {CaPlus, Ca} (in either order) and whose bottom two are exactly
// {Cr, CrMinus} (in either order). Every other permutation interleaves
// a Ca-family and a Cr-family state and is classified NonMonotone.
// This enumeration is itself the input configuration spec.md's design
// notes call for — it is never derived from an order's shape at runtime.
var canonicalMonotone = map[[4]cstate.NodeState]bool{
	{cstate.CaPlus, cstate.Ca, cstate.Cr, cstate.CrMinus}: true,
	{cstate.CaPlus, cstate.Ca, cstate.CrMinus, cstate.Cr}: true,
	{cstate.Ca, cstate.CaPlus, cstate.Cr, cstate.CrMinus}: true,
	{cstate.Ca, cstate.CaPlus, cstate.CrMinus, cstate.Cr}: true,
}

// ClassOf returns the PriorityClass configured for order. Unrecognized
// permutations (including every order that interleaves Ca-family and
// Cr-family states) classify as NonMonotone, the conservative choice.
func ClassOf(order [4]cstate.NodeState) cstate.PriorityClass {
	if canonicalMonotone[order] {
		return cstate.Monotone
	}
	return cstate.NonMonotone
}
