// Package order implements the shared food order aggregate of the accounting
// domain.
//
// An Order owns an ordered sequence of employee Allocations, and each
// Allocation owns an ordered sequence of Products. The aggregate maintains
// the derived values the rest of the system relies on:
//
//   - a Product's total price always equals quantity times unit price after
//     any mutation
//   - each participating Allocation carries its equal share of the order's
//     delivery fee, recomputed whenever the fee or the participant set changes
//   - an Allocation whose product sequence becomes empty is pruned, and the
//     caller is told when the order itself has become empty
//
// Allocations with an empty employee name are drafts: they never count toward
// fee splitting and never appear in flattened line items.
//
// All entities follow the constructor pattern: private fields, validating
// constructors, and Validate methods that reject zero-value instances.
package order
