// Package fleet runs the carrier side of the auction network: per-carrier
// agents stepping through the apply/offer/bid cycle, the scheduler that
// advances every agent and closes auctions on cycle boundaries, and the
// profit reporting produced at the end of a run.
package fleet
