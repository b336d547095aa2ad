// Package http exposes the auctioneer protocol over HTTP. Outcomes travel as
// a status field in the body; HTTP errors are reserved for malformed
// requests and internal faults.
package http

// Protocol statuses.
const (
	StatusOpen            = "open"
	StatusNone            = "none"
	StatusStarted         = "started"
	StatusRejected        = "rejected"
	StatusReceived        = "received"
	StatusNoActiveAuction = "no_active_auction"
	StatusResult          = "result"
)

// AuctionRequest is the wire form of an auction announcement: the open
// request body and the payload echoed by the current-auction endpoint.
type AuctionRequest struct {
	ReqID      string  `json:"req_id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	OrderID    string  `json:"order_id"`
	Pickup     string  `json:"pickup"`
	Delivery   string  `json:"delivery"`
	MinPrice   float64 `json:"min_price"`
}

// BidRequest is the wire form of a sealed bid.
type BidRequest struct {
	CarrierID   string  `json:"carrier_id"`
	CarrierName string  `json:"carrier_name"`
	ReqID       string  `json:"req_id"`
	Value       float64 `json:"value"`
}

// StatusResponse carries a bare protocol status.
type StatusResponse struct {
	Status string `json:"status"`
}

// CurrentAuctionResponse is the current-auction payload: status "none" when
// idle, status "open" plus the announcement when an auction is live.
type CurrentAuctionResponse struct {
	Status string `json:"status"`
	*AuctionRequest
}

// CloseAuctionResponse is the settlement payload: status "none" when idle,
// status "result" plus winner and price otherwise. WinnerID is null when the
// auction closed without bids.
type CloseAuctionResponse struct {
	Status   string  `json:"status"`
	WinnerID *string `json:"winner_id,omitempty"`
	Winner   string  `json:"winner,omitempty"`
	Price    float64 `json:"price"`
	*AuctionRequest
}

// ErrorResponse reports a malformed request or an internal fault.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
