// Package order contains the Order value object: an immutable
// pickup-and-delivery request that is owned by exactly one carrier at a time
// and migrates between carrier ledgers through auction settlement.
package order
