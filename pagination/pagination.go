// Package pagination holds the page arithmetic shared by the list endpoints.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 6
	MaxPerPage     = 100
)

// Page describes one window over a collection of Total items.
type Page struct {
	Number     int
	PerPage    int
	Total      int
	TotalPages int
	Start      int
	End        int
}

// Normalize clamps page and perPage into the accepted range.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if perPage <= 0 {
		perPage = DefaultPerPage
	} else if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

func ComputeTotals(totalCount, perPage int) int {
	totalPages := 0
	if perPage > 0 {
		totalPages = (totalCount + perPage - 1) / perPage
	}

	return totalPages
}

// New computes the window for page over total items. A page past the end
// yields an empty window (Start == End) with the totals still filled in.
func New(page, perPage, total int) Page {
	page, perPage = Normalize(page, perPage)

	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	return Page{
		Number:     page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: ComputeTotals(total, perPage),
		Start:      start,
		End:        end,
	}
}

// Slice returns the items of items that fall on p.
func Slice[T any](items []T, p Page) []T {
	out := make([]T, 0, p.End-p.Start)

	return append(out, items[p.Start:p.End]...)
}
