package models

// WebResponse is the success envelope: {"data": ...} with an optional paging
// block for search results.
type WebResponse struct {
	Data   any     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorResponse is the failure envelope: {"errors": ...}. Errors is either a
// single message string or a list of per-field violations.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// Paging describes a search result window. TotalPage is ceil(total/size) and
// is 0 when nothing matched.
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

// NewPaging computes the paging block for a result window.
func NewPaging(page, size, total int) *Paging {
	return &Paging{
		CurrentPage: page,
		TotalPage:   (total + size - 1) / size,
		Size:        size,
	}
}
