package model

import (
	"fmt"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageParams struct {
	Page  int
	Limit int
}

// ParsePageParams reads page/limit query values, applying defaults for
// missing ones. Page must be >= 1 and limit within [1, 100].
func ParsePageParams(pageStr, limitStr string) (PageParams, error) {
	p := PageParams{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return PageParams{}, fmt.Errorf("page must be an integer")
		}
		p.Page = page
	}
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return PageParams{}, fmt.Errorf("limit must be an integer")
		}
		p.Limit = limit
	}

	if p.Page < 1 {
		return PageParams{}, fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return PageParams{}, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}
	return p, nil
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages rounds up; zero rows still report a single page so clients
// always have a valid page range.
func TotalPages(total, limit int) int {
	if total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}
