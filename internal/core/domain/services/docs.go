// Package services provides domain services that derive read views across the
// order collection in the food accounting system. It implements calculations
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Aggregator: flattens the nested order collection into line items and
//     computes per-employee and grand totals
//   - Statistics: derives per-employee summary figures from flattened items
//
// Both services are stateless and never mutate orders, so they are safe for
// concurrent use.
package services
