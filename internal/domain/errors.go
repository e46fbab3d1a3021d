package domain

import "errors"

var (
	// ErrProviderMissing is returned when no signing provider is configured
	ErrProviderMissing = errors.New("signing provider missing")

	// ErrUserRejected is returned when the provider declines the account permission request
	ErrUserRejected = errors.New("account permission request rejected")

	// ErrNotConnected is returned by signer-bound operations without a connected session
	ErrNotConnected = errors.New("wallet session not connected")

	// ErrInvalidQuantity is returned for purchase quantities below one
	ErrInvalidQuantity = errors.New("invalid ticket quantity")

	// ErrUnknownTicket is returned when a ticket id is absent from the catalog snapshot
	ErrUnknownTicket = errors.New("unknown ticket type")

	// ErrInvalidDiscountCode is returned when a supplied discount code is not registered
	ErrInvalidDiscountCode = errors.New("invalid discount code")

	// ErrTicketUnavailable is returned when the ticket type is marked inactive
	ErrTicketUnavailable = errors.New("ticket type unavailable")

	// ErrPurchasingClosed is returned when the sale is inactive or the event cancelled
	ErrPurchasingClosed = errors.New("purchasing closed")

	// ErrTransactionRejected is returned when the ledger refuses a submission
	ErrTransactionRejected = errors.New("transaction rejected")

	// ErrTransactionReverted is returned when an included transaction fails execution
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrCatalogFetchFailed is returned when a catalog refresh read fails
	ErrCatalogFetchFailed = errors.New("catalog fetch failed")

	// ErrHandleInvalidated is returned when a chain identity change cancels a pending handle
	ErrHandleInvalidated = errors.New("pending transaction handle invalidated")

	// ErrInvalidAddress is returned for malformed account addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPercentage is returned for discount percentages outside 1..100
	ErrInvalidPercentage = errors.New("percentage must be between 1 and 100")
)
