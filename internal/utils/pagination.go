package utils

import "strconv"

// PageInfo describes one page of a fixed-size paginated listing.
type PageInfo struct {
	Page       int `json:"page"`
	NumPages   int `json:"num_pages"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// ResolvePage maps a raw page parameter onto a valid page number.
// A non-integer (or missing) value resolves to page 1; any out-of-range
// integer, including zero and negatives, resolves to the last page.
// An empty result set still has one (empty) page.
func ResolvePage(raw string, totalCount, pageSize int) PageInfo {
	numPages := (totalCount + pageSize - 1) / pageSize
	if numPages < 1 {
		numPages = 1
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		page = 1
	} else if page < 1 || page > numPages {
		page = numPages
	}

	return PageInfo{
		Page:       page,
		NumPages:   numPages,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

// Offset is the LIMIT/OFFSET companion of ResolvePage.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}
