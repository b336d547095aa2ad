// Package auctionclient implements the AuctionBoard port over the auctioneer
// HTTP protocol. Calls are rate limited and bounded by the HTTP client
// timeout; callers treat any transport failure as "no information this tick".
package auctionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

const (
	defaultTimeout = 5 * time.Second

	// One auction step per carrier per tick keeps traffic tiny; the limiter
	// only guards against a runaway scheduler.
	requestsPerSec = 50
	burst          = 10
)

// Protocol statuses, mirrored from the auctioneer service.
const (
	statusOpen            = "open"
	statusNone            = "none"
	statusStarted         = "started"
	statusRejected        = "rejected"
	statusReceived        = "received"
	statusNoActiveAuction = "no_active_auction"
	statusResult          = "result"
)

var _ ports.AuctionBoard = (*Client)(nil)

// auctionRequest is the wire form of an announcement.
type auctionRequest struct {
	ReqID      string  `json:"req_id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	OrderID    string  `json:"order_id"`
	Pickup     string  `json:"pickup"`
	Delivery   string  `json:"delivery"`
	MinPrice   float64 `json:"min_price"`
}

// bidRequest is the wire form of a sealed bid.
type bidRequest struct {
	CarrierID   string  `json:"carrier_id"`
	CarrierName string  `json:"carrier_name"`
	ReqID       string  `json:"req_id"`
	Value       float64 `json:"value"`
}

type currentAuctionResponse struct {
	Status string `json:"status"`
	auctionRequest
}

type closeAuctionResponse struct {
	Status   string  `json:"status"`
	WinnerID *string `json:"winner_id"`
	Winner   string  `json:"winner"`
	Price    float64 `json:"price"`
	auctionRequest
}

type statusResponse struct {
	Status string `json:"status"`
}

// Client is the HTTP AuctionBoard client with rate limiting and bounded
// request timeouts.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a Client for the auctioneer at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: baseURL,
		limiter: rate.NewLimiter(requestsPerSec, burst),
	}, nil
}

// Open implements ports.AuctionBoard.
func (c *Client) Open(ctx context.Context, ann ports.Announcement) error {
	req := auctionRequest{
		ReqID:      ann.ReqID.String(),
		SellerID:   ann.SellerID.String(),
		SellerName: ann.SellerName,
		OrderID:    ann.Order.ID().String(),
		Pickup:     string(ann.Order.Pickup()),
		Delivery:   string(ann.Order.Delivery()),
		MinPrice:   ann.ReservePrice,
	}

	var resp statusResponse
	if err := c.post(ctx, "/start_auction", req, &resp); err != nil {
		return err
	}

	switch resp.Status {
	case statusStarted:
		return nil
	case statusRejected:
		return auction.ErrAuctionInProgress
	default:
		return fmt.Errorf("unexpected start_auction status %q", resp.Status)
	}
}

// Current implements ports.AuctionBoard.
func (c *Client) Current(ctx context.Context) (*ports.Announcement, error) {
	var resp currentAuctionResponse
	if err := c.get(ctx, "/next_request", &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusNone:
		return nil, nil
	case statusOpen:
		return announcementFromWire(resp.auctionRequest)
	default:
		return nil, fmt.Errorf("unexpected next_request status %q", resp.Status)
	}
}

// PlaceBid implements ports.AuctionBoard.
func (c *Client) PlaceBid(ctx context.Context, bid auction.Bid) error {
	req := bidRequest{
		CarrierID:   bid.BidderID.String(),
		CarrierName: bid.BidderName,
		ReqID:       bid.ReqID.String(),
		Value:       bid.Value,
	}

	var resp statusResponse
	if err := c.post(ctx, "/bid", req, &resp); err != nil {
		return err
	}

	switch resp.Status {
	case statusReceived:
		return nil
	case statusNoActiveAuction:
		return auction.ErrNoActiveAuction
	default:
		return fmt.Errorf("unexpected bid status %q", resp.Status)
	}
}

// Close implements ports.AuctionBoard.
func (c *Client) Close(ctx context.Context) (*auction.Result, error) {
	var resp closeAuctionResponse
	if err := c.post(ctx, "/close_auction", struct{}{}, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusNone:
		return nil, nil
	case statusResult:
		return resultFromWire(resp)
	default:
		return nil, fmt.Errorf("unexpected close_auction status %q", resp.Status)
	}
}

func announcementFromWire(req auctionRequest) (*ports.Announcement, error) {
	reqID, err := kernel.UUIDFromString(req.ReqID)
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return nil, err
	}
	o, err := order.RestoreOrder(orderID, network.NodeID(req.Pickup), network.NodeID(req.Delivery))
	if err != nil {
		return nil, err
	}

	return &ports.Announcement{
		ReqID:        reqID,
		SellerID:     sellerID,
		SellerName:   req.SellerName,
		Order:        o,
		ReservePrice: req.MinPrice,
	}, nil
}

func resultFromWire(resp closeAuctionResponse) (*auction.Result, error) {
	ann, err := announcementFromWire(resp.auctionRequest)
	if err != nil {
		return nil, err
	}

	result := &auction.Result{
		ReqID:         ann.ReqID,
		SellerID:      ann.SellerID,
		SellerName:    ann.SellerName,
		Order:         ann.Order,
		ClearingPrice: resp.Price,
	}
	if resp.WinnerID != nil {
		winnerID, winnerErr := kernel.UUIDFromString(*resp.WinnerID)
		if winnerErr != nil {
			return nil, winnerErr
		}
		result.WinnerID = &winnerID
		result.WinnerName = resp.Winner
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auctioneer returned HTTP %d for %s", resp.StatusCode, req.URL.Path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
