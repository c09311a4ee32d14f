// Package basemodels holds the shared result types of the generic
// service layer.
package basemodels

// PaginateResult wraps one page of query results.
type PaginateResult[T any] struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	ItemCount int64 `json:"itemCount"` // items on this page
	Total     int64 `json:"total"`     // items matching the filter
	TotalPage int64 `json:"totalPage"`
	Items     []T   `json:"items"`
}

// CountResult is the payload of count endpoints.
type CountResult struct {
	Count int64 `json:"count"`
}
