// Package checkout provides the multi-step checkout flow for the garment
// ordering system. It implements the Checkout aggregate root with its stage
// state machine and the selections gathered along the way.
//
// The package includes:
//   - Checkout: the aggregate holding stage, delivery address, measurement
//     selection, and a snapshot of cart line items taken on entering the flow
//   - Stage: a state machine enforcing valid stage transitions
//
// Key business rules:
//   - Stages follow Details -> Review -> Confirmation
//   - Leaving Details requires a measurement selection and a complete address
//   - Review may retreat to Details; Confirmation is terminal
//   - Confirmation is reached only through a successful order submission
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package checkout
