package auction

import (
	"errors"
	"sort"
	"sync"
)

// Expected protocol rejections. Callers treat these as no-ops, not faults.
var (
	// ErrAuctionInProgress is returned when opening an auction while one is
	// already live. The rejected seller simply tries again next cycle.
	ErrAuctionInProgress = errors.New("auction already in progress")
	// ErrNoActiveAuction is returned when bidding while no auction is open
	// or against a stale request ID.
	ErrNoActiveAuction = errors.New("no active auction")
)

// House is the auctioneer's single shared mutable resource: at most one live
// auction and its bid list. Every operation is serialized behind one mutex so
// Close observes a stable, fully formed bid list and no bid can race with an
// in-flight close.
//
// Lifecycle: IDLE -> OPEN -> IDLE. The closed state is transient — closing
// produces a Result and clears the live auction in the same step.
type House struct {
	mu      sync.Mutex
	current *Auction
}

// NewHouse creates an idle House.
func NewHouse() *House {
	return &House{}
}

// Open registers a new live auction. It fails with ErrAuctionInProgress while
// another auction is open: offers are rejected, never replaced or queued.
func (h *House) Open(a *Auction) error {
	if err := a.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		return ErrAuctionInProgress
	}

	h.current = a
	return nil
}

// Current returns a snapshot of the live auction, or nil when idle. The
// returned value shares no mutable state with the house.
func (h *House) Current() *Auction {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil
	}

	snapshot := *h.current
	snapshot.bids = h.current.Bids()
	return &snapshot
}

// PlaceBid accepts a bid only while an auction is open and the bid's request
// ID matches it. Stale or absent-auction bids are rejected with
// ErrNoActiveAuction, not queued.
func (h *House) PlaceBid(b Bid) error {
	if err := b.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil || !h.current.ReqID().IsEqual(b.ReqID) {
		return ErrNoActiveAuction
	}

	h.current.place(b)
	return nil
}

// Close settles the live auction and returns the house to idle. When idle it
// returns nil ("none"). Otherwise the winner is the highest bidder and the
// clearing price follows the sealed-bid second-price rule:
//
//   - two or more bids: the second-highest bid's value
//   - exactly one bid: the winner's own value (the source system's
//     deliberate deviation from reserve-price Vickrey pricing)
//   - no bids: price zero, no winner, the seller keeps the order
//
// Equal-value bids rank in arrival order: the earlier bid wins.
func (h *House) Close() *Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil
	}

	a := h.current
	h.current = nil

	ranked := a.Bids()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	result := &Result{
		ReqID:      a.ReqID(),
		SellerID:   a.SellerID(),
		SellerName: a.SellerName(),
		Order:      a.Order(),
	}

	switch {
	case len(ranked) == 0:
		// Seller retains the order; nothing to pay.
	case len(ranked) == 1:
		winnerID := ranked[0].BidderID
		result.WinnerID = &winnerID
		result.WinnerName = ranked[0].BidderName
		result.ClearingPrice = ranked[0].Value
	default:
		winnerID := ranked[0].BidderID
		result.WinnerID = &winnerID
		result.WinnerName = ranked[0].BidderName
		result.ClearingPrice = ranked[1].Value
	}

	return result
}
