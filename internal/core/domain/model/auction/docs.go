// Package auction models the order-reallocation auction: the Auction and Bid
// value objects, the settlement Result, and the House — the single-owner
// auctioneer state machine holding at most one live auction at a time and
// resolving it with a sealed-bid second-price rule.
package auction
