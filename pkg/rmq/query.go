package rmq

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams are the list options understood by paginated management API
// endpoints (queues, exchanges, connections, channels, consumers). Zero
// values are omitted from the encoded query string entirely.
type QueryParams struct {
	// Page is 1-based.
	Page     int
	PageSize int
	// Name filters items by name; interpreted as a regular expression when
	// UseRegex is set.
	Name     string
	UseRegex bool
	// Columns restricts the response to the named columns.
	Columns []string
	// Sort names the column to sort by.
	Sort        string
	SortReverse bool
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPage sets the page number.
func (p *QueryParams) WithPage(page int) *QueryParams {
	p.Page = page

	return p
}

// WithPageSize sets the page size.
func (p *QueryParams) WithPageSize(size int) *QueryParams {
	p.PageSize = size

	return p
}

// WithName sets the name filter.
func (p *QueryParams) WithName(name string) *QueryParams {
	p.Name = name

	return p
}

// WithRegex sets the name filter and marks it as a regular expression.
func (p *QueryParams) WithRegex(pattern string) *QueryParams {
	p.Name = pattern
	p.UseRegex = true

	return p
}

// ToValues converts the params to url.Values.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(p.PageSize))
	}

	if p.Name != "" {
		values.Set("name", p.Name)
		values.Set("use_regex", strconv.FormatBool(p.UseRegex))
	}

	if len(p.Columns) > 0 {
		values.Set("columns", strings.Join(p.Columns, ","))
	}

	if p.Sort != "" {
		values.Set("sort", p.Sort)

		if p.SortReverse {
			values.Set("sort_reverse", "true")
		}
	}

	return values
}
