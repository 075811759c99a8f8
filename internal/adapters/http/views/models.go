// Package views holds the view models the page templates render, the
// template engine and the flash message cookie.
package views

// MenuItem is one sidebar entry
type MenuItem struct {
	Label  string
	URL    string
	Active bool
}

// Menu is the sidebar in display order
var Menu = []MenuItem{
	{Label: "Dashboard", URL: "/dashboard"},
	{Label: "Enrollment", URL: "/enrollments"},
	{Label: "Attendance", URL: "/attendance"},
	{Label: "Marks", URL: "/marks"},
	{Label: "Students", URL: "/students"},
	{Label: "Courses", URL: "/courses"},
	{Label: "Library", URL: "/library"},
}

// Page is the root model of every page rendered inside the main layout
type Page struct {
	Title   string
	Heading string
	User    string
	Flash   *Flash
	Menu    []MenuItem
	Back    string
	Links   []Action

	Cards  []Card
	Filter *Filter
	Table  *Table
	Form   *Form
	Detail *Detail
	Note   string
}

// NewPage builds a page with the sidebar entry under active highlighted
func NewPage(title, active string) *Page {
	menu := make([]MenuItem, len(Menu))
	copy(menu, Menu)
	for i := range menu {
		menu[i].Active = menu[i].URL == active
	}
	return &Page{Title: title, Heading: title, Menu: menu}
}

// Card is a dashboard counter
type Card struct {
	Label string
	Value string
	Tone  string
}

// Filter is the student selector above per-student lists
type Filter struct {
	Action string
	Name   string
	Label  string
	Field  Field
}

// Table is a list view with optional search, pager and per-row actions
type Table struct {
	ID       string
	Columns  []string
	Rows     []Row
	Empty    string
	Search   *Search
	NewURL   string
	NewLabel string
	Pager    *Pager
}

// Search is the live search box above a table
type Search struct {
	Action      string
	Value       string
	Placeholder string
	Limit       int
}

// Row is one table row
type Row struct {
	Cells   []string
	Actions []Action
}

// Action is a link, or a POST button when Method is "POST"
type Action struct {
	Label   string
	URL     string
	Method  string
	Confirm string
	Style   string
}

// IsPost reports whether the action submits a form
func (a Action) IsPost() bool { return a.Method == "POST" }

// Form is a create or edit form
type Form struct {
	Action string
	Submit string
	Cancel string
	Fields []Field
	Error  string
}

// Field is one form control. Type "select" uses Options, "textarea" renders
// a text area, anything else is an input type.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Min         string
	Max         string
	Step        string
	Options     []Option
	Error       string
}

// Option is a select entry
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Options builds select options marking selected
func Options(selected string, pairs ...string) []Option {
	opts := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, Option{Value: pairs[i], Label: pairs[i+1], Selected: pairs[i] == selected})
	}
	return opts
}

// Detail is a read-only record view
type Detail struct {
	Items   []Item
	Actions []Action
}

// Item is one label/value pair of a Detail
type Item struct {
	Label string
	Value string
}

// WithErrors copies validation messages onto the matching fields
func (f *Form) WithErrors(fields map[string]string) *Form {
	for i := range f.Fields {
		if msg, ok := fields[f.Fields[i].Name]; ok {
			f.Fields[i].Error = msg
		}
	}
	return f
}

// Fill sets field values from submitted form data
func (f *Form) Fill(values map[string]string) *Form {
	for i := range f.Fields {
		if v, ok := values[f.Fields[i].Name]; ok {
			f.Fields[i].Value = v
			for j := range f.Fields[i].Options {
				f.Fields[i].Options[j].Selected = f.Fields[i].Options[j].Value == v
			}
		}
	}
	return f
}
