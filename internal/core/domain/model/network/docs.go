// Package network models the road network the carrier fleet operates on:
// nodes (pickup points, delivery points, depots), a directory of all known
// nodes, and the pairwise distance matrix derived from node locations.
// The routing solver and the valuation engine consume these types read-only.
package network
