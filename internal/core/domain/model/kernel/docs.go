// Package kernel holds the value objects shared by every aggregate of the ordering
// domain: UUID identifiers and Money amounts. Both are immutable and validated on
// construction.
package kernel
