// Package kernel provides core domain primitives for the paybook order stub.
//
// The package includes:
//   - OrderID: a value object for order identifiers of the form "ORD-000001",
//     carrying the numeric sequence position they were issued from
//
// These primitives enforce domain invariants and validation rules, ensuring
// that identifiers handed to the domain model are always well formed. They are
// immutable and safe for concurrent use.
package kernel
