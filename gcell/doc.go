// Package gcell orchestrates one routing tile: obstacle application, the
// staged pin-placement protocol (inner, cross, between-stack), and Stack
// realization, grounded on Src/Include/DEF/GCell.hpp's GCell class and the
// control-flow ordering of spec §4.4.
//
// Recoverable placement failures (a pin that cannot be placed after
// metal-escalation, a cross pin, or a between-stack pin) do not abort the
// GCell; they accumulate into Failures and the GCell continues, per DESIGN
// NOTES §9's closed-tagged-return-over-exceptions strategy.
package gcell
