package handlers

const (
	maxHistoryPageSize = 100 // Maximum page size for usage history
)
