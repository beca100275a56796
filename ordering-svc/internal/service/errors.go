package service

import "errors"

var (
	ErrMenuLoadFailed        = errors.New("menu could not be loaded")
	ErrTotalPollFailed       = errors.New("table total could not be refreshed")
	ErrTokenResolutionFailed = errors.New("table token could not be resolved")
	ErrMissingTableIdentity  = errors.New("table number is missing, scan the table code again")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrSubmissionFailed      = errors.New("order submission failed")
	ErrItemUnavailable       = errors.New("menu item is not available")
	ErrSubmitInProgress      = errors.New("an order is already being submitted")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrNoTableSelected       = errors.New("no table selected")
	ErrMissingRestaurant     = errors.New("restaurant slug is required")
	ErrDeskClosed            = errors.New("desk closed")
)
