package params

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// QueryParams captures common pagination/sorting query parameters.
type QueryParams struct {
	PageNumber    int
	PageSize      int
	SortDirection string // ASC | DESC
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// FromEchoContext parses page, size and sort query parameters with defaults.
func FromEchoContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber:    DefaultPageNumber,
		PageSize:      DefaultPageSize,
		SortDirection: "DESC",
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 {
		if v > MaxPageSize {
			v = MaxPageSize
		}
		p.PageSize = v
	}
	if strings.EqualFold(c.QueryParam("sort"), "ASC") {
		p.SortDirection = "ASC"
	}

	return p
}
