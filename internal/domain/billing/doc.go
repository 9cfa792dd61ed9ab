// Package billing holds the bill ledger domain: customer receipts recorded at
// the point of sale.
//
// Key Aggregates:
//   - Bill: immutable record of one sale, owning its order lines
//
// Value Objects:
//   - Customer: free-text buyer details printed on the bill
//   - OrderLine: one product, quantity and price entry on a bill
//
// A bill references catalog products by name. The product ID is resolved when
// the bill is recorded and kept next to the name snapshot, so renaming a
// product later does not alter historical bills.
package billing
