// Package kernel provides core domain primitives for the carrier network.
// It implements the fundamental building blocks shared by every aggregate:
//
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Location: a value object for points on the service-area plane, carrying
//     the Euclidean distance metric all tariffs are priced against
//
// These primitives enforce their invariants at construction time, are
// immutable, and are safe for concurrent use.
package kernel
