// Package order provides the Order aggregate root for the production tracker.
// An order belongs to one customer and owns its production stages and billable
// line items (particulars).
//
// The package includes:
//   - Order: the aggregate root managing order identity, line items, stages, and lifecycle
//   - Stage: the per-order instantiation of a pipeline stage definition
//   - Particular: a billable line item
//   - Status / StageStatus: enumerated lifecycle states for orders and stages
//
// Key business rules:
//   - A stage's end date is set if and only if the stage is Completed
//   - Completing a stage activates the next stage in sequence: the stage with
//     the smallest sequence position strictly greater than the completed one,
//     never "position + 1" (sequence positions may have gaps)
//   - Activation only promotes Pending stages; stages already In Progress or
//     Completed are left alone, which makes re-completion idempotent
//   - At most one stage per order is In Progress under the progression rule
//   - The order total is the sum of its particulars
//
// All mutations happen in memory on the aggregate; the repository persists the
// whole aggregate in one transaction, so completing one stage and activating
// the next is atomic.
package order
