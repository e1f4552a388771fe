package handler

// Pagination describes the window of page links around the current page.
// Pages are zero-indexed.
type Pagination struct {
	Current   int `json:"current"`
	PageCount int `json:"page_count"`
	First     int `json:"first"`
	Last      int `json:"last"`
}

// DefaultPageWindow is the number of page links shown on each side of the
// current page.
const DefaultPageWindow = 4

// Paginate computes the page count for total records split into pages of
// pageSize, and the first and last page links to show when around pages
// are displayed on each side of current. A non-positive pageSize yields a
// single page.
func Paginate(total, current, pageSize, around int) Pagination {
	pageCount := 1
	if pageSize > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}
	if total <= 0 {
		pageCount = 0
	}
	if around < 0 {
		around = 0
	}
	return Pagination{
		Current:   current,
		PageCount: pageCount,
		First:     max(0, current-around),
		Last:      min(max(0, pageCount-1), current+around),
	}
}

// Pages lists the page indexes from First to Last.
func (p Pagination) Pages() []int {
	if p.Last < p.First {
		return nil
	}
	out := make([]int, 0, p.Last-p.First+1)
	for i := p.First; i <= p.Last; i++ {
		out = append(out, i)
	}
	return out
}

// HasPrev reports whether a page precedes Current.
func (p Pagination) HasPrev() bool { return p.Current > 0 }

// HasNext reports whether a page follows Current.
func (p Pagination) HasNext() bool { return p.Current < p.PageCount-1 }
