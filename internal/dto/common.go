package dto

import "time"

// ListParams defines query parameters shared by the generic list endpoints.
type ListParams struct {
	Limit  int    `form:"limit,default=50" binding:"min=0,max=500"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
	From   string `form:"from"` // YYYY-MM-DD, inclusive
	To     string `form:"to"`   // YYYY-MM-DD, inclusive
}

// ListResponse wraps a page of any entity.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DateFormat is the layout of every date-only query parameter.
const DateFormat = "2006-01-02"

// ParseDateParam parses an optional YYYY-MM-DD query value. An empty value yields nil.
// When endOfDay is set the result is moved to the last instant of that day so that
// inclusive "to" bounds cover timestamps within it.
func ParseDateParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
