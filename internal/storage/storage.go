package storage

import "errors"

// Sentinel errors shared by the storage layer and its callers. Handlers
// match on these with errors.Is to pick the HTTP status and message.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrSheetNotFound = errors.New("music sheet not found")
	ErrEventNotFound = errors.New("event not found")
	ErrEventEnded    = errors.New("event has ended")
	ErrOutOfStock    = errors.New("event is out of stock")

	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("category is referenced by music sheets")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrRequestNotFound      = errors.New("song request not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
