package views

import (
	"strconv"

	"sms-admin/internal/pkg/pagination"
)

// Pager is the page-number bar under a table
type Pager struct {
	Items   []PagerItem
	PrevURL string
	NextURL string
	Summary string
}

// PagerItem is one page button or an ellipsis
type PagerItem struct {
	Number   int
	URL      string
	Current  bool
	Ellipsis bool
}

// NewPager builds the bar for path, keeping search and limit in every link.
// It returns nil when everything fits on one page.
func NewPager(path string, q pagination.Query, meta pagination.Meta) *Pager {
	if meta.LastPage <= 1 {
		return nil
	}
	link := func(page int) string {
		return path + "?" + q.WithPage(page).Values().Encode()
	}

	p := &Pager{
		Summary: "Page " + strconv.Itoa(meta.Page) + " of " + strconv.Itoa(meta.LastPage) +
			" (" + strconv.Itoa(meta.Total) + " total)",
	}
	for _, it := range pagination.Pages(meta.Page, meta.LastPage) {
		item := PagerItem{Number: it.Number, Current: it.Current, Ellipsis: it.Ellipsis}
		if !it.Ellipsis {
			item.URL = link(it.Number)
		}
		p.Items = append(p.Items, item)
	}
	if meta.HasPrev() {
		p.PrevURL = link(meta.Page - 1)
	}
	if meta.HasNext() {
		p.NextURL = link(meta.Page + 1)
	}
	return p
}
