package query

import "bespokedbikes/internal/paging"

// Parameters are the list inputs shared by every collection.
type Parameters struct {
	Filters   string `form:"filters" json:"filters"`
	SortOrder string `form:"sortOrder" json:"sortOrder"`
	paging.Params
}
