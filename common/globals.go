package common

const (
	EventTypeListed       = "listed"
	EventTypeSold         = "sold"
	EventTypePriceChanged = "price_changed"
	EventTypeUnlisted     = "unlisted"
	EventTypeStatsUpdated = "stats_updated"

	// EventTopicAll receives every market event regardless of type
	EventTopicAll = "*"

	EntryTypeDeposit  = "deposit"
	EntryTypePayment  = "payment"
	EntryTypeFee      = "fee"
	EntryTypeProceeds = "proceeds"
	EntryTypeRefund   = "refund"

	FeeConfigID = 1

	// MaxFeePercentage is exclusive
	MaxFeePercentage = 100
)
