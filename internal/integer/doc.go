// Package integer specializes the unit capabilities for machine integers:
// bitwise operations, integer exponentiation and overflow-checked arithmetic.
//
// Plain operations wrap like the machine does. The Checked* variants report
// unit.ErrOverflow instead; the fixed-point layer is built on them.
package integer
