package domain

// Page is one page of a listed collection. Pages are 1-indexed and
// TotalPages is ceil(Total/limit) over the filtered set.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}
