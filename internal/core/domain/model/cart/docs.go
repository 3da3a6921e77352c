// Package cart provides domain entities and aggregation logic for the shopping
// cart in the garment ordering system.
//
// The package includes:
//   - LineItem: one product-quantity-size entry in the cart
//   - Subtotal / TotalItemCount: pure aggregations over a set of line items
//
// Key business rules:
//   - A line item always references a product and carries a non-negative unit price
//   - Quantity is never below 1; removal is the only way to reach zero presence
//   - Size and image reference are optional display attributes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package cart
