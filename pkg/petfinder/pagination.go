package petfinder

import (
	"context"
	"fmt"
)

// PageSpec selects how many result pages an aggregated fetch should
// cover. The zero value fetches the first page only.
type PageSpec struct {
	// Pages is the number of pages to aggregate, starting from page 1.
	// Zero means the first page only.
	Pages int

	// AllPages walks every available page regardless of Pages. The
	// page size is forced to the API maximum to minimize round trips.
	AllPages bool
}

// BoundaryNotice signals that a requested page count exceeded the pages
// the server reported available and was clamped. It is informational,
// never an error; aggregation continues with the clamped count.
type BoundaryNotice struct {
	RequestedPages int
	AvailablePages int
}

// String implements fmt.Stringer.
func (n BoundaryNotice) String() string {
	return fmt.Sprintf("requested %d pages but only %d pages are available; the maximum number of pages was returned",
		n.RequestedPages, n.AvailablePages)
}

// PageFetcher fetches a single 1-based result page and reports the
// server's total page count alongside the page's items.
type PageFetcher[T any] func(ctx context.Context, page int) (items []T, totalPages int, err error)

// CollectPages drives a paginated fetch according to spec, appending
// each page's items in fetch order. Pages are fetched sequentially in
// strictly increasing order; only the first page reveals the total page
// count. If any fetch fails the aggregation aborts and no partial
// results are returned.
func CollectPages[T any](ctx context.Context, spec PageSpec, fetch PageFetcher[T]) ([]T, *BoundaryNotice, error) {
	if spec.Pages < 0 {
		return nil, nil, &ArgumentError{Argument: "pages", Reason: "page count cannot be negative"}
	}

	items, totalPages, err := fetch(ctx, 1)
	if err != nil {
		return nil, nil, err
	}

	if spec.Pages == 0 && !spec.AllPages {
		return items, nil, nil
	}

	bound := spec.Pages

	var notice *BoundaryNotice

	switch {
	case spec.AllPages:
		bound = totalPages
	case spec.Pages > totalPages:
		notice = &BoundaryNotice{RequestedPages: spec.Pages, AvailablePages: totalPages}
		bound = totalPages
	}

	for page := 2; page <= bound; page++ {
		pageItems, _, err := fetch(ctx, page)
		if err != nil {
			return nil, nil, err
		}

		items = append(items, pageItems...)
	}

	return items, notice, nil
}
