package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DefaultLimit is the default number of rows per page
const DefaultLimit = 10

// MaxLimit is the maximum number of rows per page
const MaxLimit = 100

// Window is how many pages are listed without ellipsis
const Window = 7

// Query is the list state a page sends to the backend
type Query struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

// FromCtx extracts search and pagination parameters from the request
func FromCtx(c *fiber.Ctx) Query {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	return Query{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
		Limit:  limit,
	}.Normalize()
}

// Normalize clamps page and limit into range
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Values renders the query for the backend
func (q Query) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return v
}

// WithPage returns a copy pointing at page
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Meta represents pagination metadata as the backend reports it
type Meta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"last_page"`
}

// NewMeta calculates pagination metadata
func NewMeta(total, page, limit int) Meta {
	if limit < 1 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	lastPage := total / limit
	if total%limit > 0 {
		lastPage++
	}
	return Meta{
		Total:    total,
		Page:     page,
		Limit:    limit,
		LastPage: lastPage,
	}
}

// HasPrev reports whether a previous page exists
func (m Meta) HasPrev() bool { return m.Page > 1 }

// HasNext reports whether a next page exists
func (m Meta) HasNext() bool { return m.Page < m.LastPage }

// PageItem is one control in the page-number bar. Ellipsis items carry no number.
type PageItem struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// Pages builds the page-number controls. Up to Window pages are all listed;
// beyond that the first, the last and current±1 are kept with ellipses
// between the gaps.
func Pages(current, last int) []PageItem {
	if last < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	if last <= Window {
		items := make([]PageItem, 0, last)
		for n := 1; n <= last; n++ {
			items = append(items, PageItem{Number: n, Current: n == current})
		}
		return items
	}

	keep := map[int]bool{1: true, last: true}
	for n := current - 1; n <= current+1; n++ {
		if n >= 1 && n <= last {
			keep[n] = true
		}
	}

	var items []PageItem
	prev := 0
	for n := 1; n <= last; n++ {
		if !keep[n] {
			continue
		}
		if prev != 0 && n-prev > 1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: n, Current: n == current})
		prev = n
	}
	return items
}

// Slice returns the items of one page for lists the backend does not
// paginate, along with the matching metadata.
func Slice[T any](items []T, page, limit int) ([]T, Meta) {
	meta := NewMeta(len(items), page, limit)
	if meta.LastPage > 0 && meta.Page > meta.LastPage {
		meta.Page = meta.LastPage
	}

	start := (meta.Page - 1) * meta.Limit
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + meta.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
