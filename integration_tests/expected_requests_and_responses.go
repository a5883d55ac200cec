package integration_tests

import "time"

type ExpectedAuthResponseBody struct {
	Address     string `json:"address"`
	AccessToken string `json:"access_token"`
}

type ExpectedListing struct {
	Collection string `json:"collection"`
	TokenID    uint64 `json:"token_id"`
	Seller     string `json:"seller"`
	Price      int64  `json:"price"`
	Active     bool   `json:"active"`
	Buyer      string `json:"buyer"`
}

type ExpectedSale struct {
	Seller        string `json:"seller"`
	Buyer         string `json:"buyer"`
	Price         int64  `json:"price"`
	Payment       int64  `json:"payment"`
	Fee           int64  `json:"fee"`
	Proceeds      int64  `json:"proceeds"`
	Refund        int64  `json:"refund"`
	FeePercentage int64  `json:"fee_percentage"`
}

type ExpectedBalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type ExpectedAssetResponse struct {
	Owner string `json:"owner"`
}

type ExpectedStatsResponse struct {
	TotalListings int64 `json:"total_listings"`
	TotalSales    int64 `json:"total_sales"`
}

type ExpectedMarketEvent struct {
	ID            int64     `json:"id"`
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	Collection    string    `json:"collection"`
	TokenID       uint64    `json:"token_id"`
	Seller        string    `json:"seller"`
	Buyer         string    `json:"buyer"`
	Price         int64     `json:"price"`
	TotalListings int64     `json:"total_listings"`
	TotalSales    int64     `json:"total_sales"`
	CreatedAt     time.Time `json:"created_at"`
}
