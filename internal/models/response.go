package models

// TrendingResponse is the paginated trending payload.
type TrendingResponse struct {
	Count    int       `json:"count"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	HasMore  bool      `json:"has_more"`
	Articles []Article `json:"articles"`
}

// SearchResponse is the composed search payload, cached per (user, query).
type SearchResponse struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	Articles []Article `json:"articles"`
}

// SaveRequest is the body of POST /trending/save.
type SaveRequest struct {
	Article Article `json:"article" binding:"required"`
}

// SaveResponse reports the outcome of a save.
type SaveResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SavedResponse lists a user's saved articles.
type SavedResponse struct {
	Count    int       `json:"count"`
	Articles []Article `json:"articles"`
}

// NewPagination computes the trending page slice bounds over a filtered list
// of total articles. Pagination never triggers a fetch; it only slices.
func NewPagination(page, limit, total int) (start, end int, hasMore bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end, page*limit < total
}
