// Package defn decides whether a target connective is expressible from a
// basis set by composition of bounded depth.
//
// Two notions of definability are supported. Syntactic definability demands a
// concrete composition witness for every claim, projections included.
// Truth-functional definability additionally grants, up front, the two
// clone-theoretic axioms: every projection is definable from any non-empty
// basis, and constant functions of equal value are mutually definable across
// arities.
//
// Two interchangeable strategies sit behind the same Backend interface. The
// enumeration strategy computes the exact closure of reachable truth tables
// up to the depth bound and is the default for small arities. The SAT
// strategy encodes the shape of a composition tree as clauses for the gini
// solver and decodes a witness from the model; every decoded witness is
// re-verified by direct evaluation before it is trusted.
//
// Both strategies report a three-valued Outcome: Definable, Undefinable, or
// Indet when a solver timeout or cancellation prevents a verdict. Indet is
// never collapsed into either definite answer.
package defn
