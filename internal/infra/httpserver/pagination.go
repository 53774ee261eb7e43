package httpserver

import (
	"math"
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// Offset is the index of the first item of the page. It saturates at
// math.MaxInt instead of overflowing for very large pages.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ExtractPaginationParams reads page and limit from the query string. Values
// out of range fall back to the defaults.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if page, err := strconv.Atoi(GetQueryParam(r, "page")); err == nil && page > 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(GetQueryParam(r, "limit")); err == nil && limit > 0 && limit <= _maxLimit {
		params.Limit = limit
	}

	return params
}

type PaginationMeta struct {
	Page       int `json:"page" msgpack:"page"`
	Limit      int `json:"limit" msgpack:"limit"`
	Total      int `json:"total" msgpack:"total"`
	TotalPages int `json:"total_pages" msgpack:"total_pages"`
}

type PaginatedResponse struct {
	Data       any            `json:"data" msgpack:"data"`
	Pagination PaginationMeta `json:"pagination" msgpack:"pagination"`
}

func NewPaginatedResponse(data any, total int, params PaginationParams) PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return PaginatedResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Paginate returns the window of items selected by params.
func Paginate[T any](items []T, params PaginationParams) []T {
	start := params.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}

	end := start + min(params.Limit, len(items)-start)
	return items[start:end]
}
