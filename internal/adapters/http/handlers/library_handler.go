package handlers

import (
	"strconv"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/pagination"

	"github.com/gofiber/fiber/v2"
)

// recordsPerPage is the page size of the issue record list. The backend
// returns every record, so the list is paged here.
const recordsPerPage = 10

// LibraryHandler serves the books and issue record pages
type LibraryHandler struct {
	gw *Gateway
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(gw *Gateway) *LibraryHandler {
	return &LibraryHandler{gw: gw}
}

func day(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func recordNames(r domain.LibraryRecord) (student, book string) {
	student, book = "-", "-"
	if r.Student != nil {
		student = r.Student.FullName()
	}
	if r.Book != nil {
		book = r.Book.Title
	}
	return student, book
}

// Records lists the issue records ten at a time
func (h *LibraryHandler) Records(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Library Records", "/library")
	table := &views.Table{
		ID:       "library-table",
		Columns:  []string{"Student", "Book", "Issued At", "Status", ""},
		Empty:    "No records found",
		NewURL:   "/library/add",
		NewLabel: "+ Assign Book",
	}
	p.Table = table
	p.Links = []views.Action{{Label: "Books", URL: "/library/books", Style: "light"}}

	records, err := h.gw.Backend(c).Library.ListRecords(c.UserContext())
	if err != nil {
		if expired(err) {
			return toLogin(c)
		}
		logFailure(c, err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load records"}
		return render(c, p)
	}

	q := pagination.FromCtx(c)
	q.Limit = recordsPerPage
	rows, meta := pagination.Slice(records, q.Page, recordsPerPage)
	for _, r := range rows {
		id := r.ID.String()
		student, book := recordNames(r)
		table.Rows = append(table.Rows, views.Row{
			Cells: []string{student, book, day(r.IssuedAt), r.Status},
			Actions: []views.Action{
				{Label: "View", URL: "/library/view/" + id, Style: "light"},
				{Label: "Edit", URL: "/library/edit/" + id, Style: "light"},
				{Label: "Delete", URL: "/library/records/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this record?", Style: "danger"},
			},
		})
	}
	table.Pager = views.NewPager("/library", q.WithPage(meta.Page), meta)
	return render(c, p)
}

// NewAssign renders the assign-book form
func (h *LibraryHandler) NewAssign(c *fiber.Ctx) error {
	p, err := h.gw.formPage(c, "Assign Book", "/library", true, assignForm)
	if err != nil {
		return fail(c, err, "Failed to load dropdown data", "/library")
	}
	return render(c, p)
}

// Assign issues a book to a student
func (h *LibraryHandler) Assign(c *fiber.Ctx) error {
	var input services.AssignInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Assign failed", "/library/add")
	}

	if err := h.gw.Backend(c).Library.Assign(c.UserContext(), &input); err != nil {
		p, perr := h.gw.formPage(c, "Assign Book", "/library", true, assignForm)
		if perr != nil {
			return fail(c, err, "Assign failed", "/library/add")
		}
		return invalid(c, p, err, "Assign failed", "/library/add")
	}
	return done(c, "Book Assigned Successfully", "/library")
}

// ViewRecord renders one issue record
func (h *LibraryHandler) ViewRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	r, err := h.gw.Backend(c).Library.GetRecord(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Record", "Failed to load record", "/library")
	}

	student, book := recordNames(*r)
	returned := day(r.ReturnDate)
	if returned == "" {
		returned = "-"
	}

	p := h.gw.newPage(c, "Library Record", "/library")
	p.Back = "/library"
	p.Detail = &views.Detail{
		Items: []views.Item{
			{Label: "Student", Value: student},
			{Label: "Book", Value: book},
			{Label: "Issued At", Value: day(r.IssuedAt)},
			{Label: "Return Date", Value: returned},
			{Label: "Status", Value: r.Status},
		},
		Actions: []views.Action{
			{Label: "Edit", URL: "/library/edit/" + id, Style: "primary"},
			{Label: "Delete", URL: "/library/records/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this record?", Style: "danger"},
		},
	}
	return render(c, p)
}

// EditRecord renders the edit-record form
func (h *LibraryHandler) EditRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	r, err := h.gw.Backend(c).Library.GetRecord(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Record", "Failed to load record", "/library")
	}

	p, err := h.gw.formPage(c, "Edit Record", "/library", true, func(ref *services.ReferenceData) *views.Form {
		return recordForm(id, ref, r)
	})
	if err != nil {
		return fail(c, err, "Failed to load dropdown data", "/library")
	}
	return render(c, p)
}

// UpdateRecord saves the edit-record form
func (h *LibraryHandler) UpdateRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	var input services.RecordUpdate
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Update failed", "/library/edit/"+id)
	}

	if err := h.gw.Backend(c).Library.UpdateRecord(c.UserContext(), id, &input); err != nil {
		p, perr := h.gw.formPage(c, "Edit Record", "/library", true, func(ref *services.ReferenceData) *views.Form {
			return recordForm(id, ref, nil)
		})
		if perr != nil {
			return fail(c, err, "Update failed", "/library/edit/"+id)
		}
		return invalid(c, p, err, "Update failed", "/library/edit/"+id)
	}
	return done(c, "Record Updated Successfully", "/library")
}

// DeleteRecord removes an issue record
func (h *LibraryHandler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.gw.Backend(c).Library.DeleteRecord(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Delete failed", "/library")
	}
	return done(c, "Deleted", "/library")
}

// Books lists the catalogue with stock counts
func (h *LibraryHandler) Books(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Books", "/library")
	p.Back = "/library"
	table := &views.Table{
		ID:       "books-table",
		Columns:  []string{"Title", "Class", "Total", "Available", ""},
		Empty:    "No books found",
		NewURL:   "/library/books/add",
		NewLabel: "+ Add Book",
	}
	p.Table = table

	books, err := h.gw.Backend(c).Library.ListBooks(c.UserContext())
	if err != nil {
		if expired(err) {
			return toLogin(c)
		}
		logFailure(c, err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load books"}
		return render(c, p)
	}

	for _, b := range books {
		id := b.ID.String()
		table.Rows = append(table.Rows, views.Row{
			Cells: []string{b.Title, b.BookClass, strconv.Itoa(b.TotalQuantity), strconv.Itoa(b.AvailableQuantity)},
			Actions: []views.Action{
				{Label: "View", URL: "/library/books/" + id, Style: "light"},
				{Label: "Delete", URL: "/library/books/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this book?", Style: "danger"},
			},
		})
	}
	return render(c, p)
}

// NewBook renders the add-book form
func (h *LibraryHandler) NewBook(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Add Book", "/library")
	p.Back = "/library/books"
	p.Form = bookForm()
	return render(c, p)
}

// CreateBook adds a title to the catalogue
func (h *LibraryHandler) CreateBook(c *fiber.Ctx) error {
	var input services.BookInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Error adding book", "/library/books/add")
	}

	if err := h.gw.Backend(c).Library.CreateBook(c.UserContext(), &input); err != nil {
		p := h.gw.newPage(c, "Add Book", "/library")
		p.Back = "/library/books"
		p.Form = bookForm()
		return invalid(c, p, err, "Error adding book", "/library/books/add")
	}
	return done(c, "Book Added", "/library/books")
}

// ShowBook renders one book
func (h *LibraryHandler) ShowBook(c *fiber.Ctx) error {
	id := c.Params("id")
	b, err := h.gw.Backend(c).Library.GetBook(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Book", "Failed to load book", "/library/books")
	}

	p := h.gw.newPage(c, b.Title, "/library")
	p.Back = "/library/books"
	p.Detail = &views.Detail{
		Items: []views.Item{
			{Label: "Title", Value: b.Title},
			{Label: "Class", Value: b.BookClass},
			{Label: "Total Quantity", Value: strconv.Itoa(b.TotalQuantity)},
			{Label: "Available", Value: strconv.Itoa(b.AvailableQuantity)},
		},
		Actions: []views.Action{
			{Label: "Delete", URL: "/library/books/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this book?", Style: "danger"},
		},
	}
	return render(c, p)
}

// DeleteBook removes a title
func (h *LibraryHandler) DeleteBook(c *fiber.Ctx) error {
	if err := h.gw.Backend(c).Library.DeleteBook(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to delete book", "/library/books")
	}
	return done(c, "Book deleted", "/library/books")
}
