package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams is the shared pagination/filter envelope for list endpoints.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func FromContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: 1,
		PageSize:   defaultPageSize,
		Search:     c.QueryParam("search"),
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 {
		if n > maxPageSize {
			n = maxPageSize
		}
		p.PageSize = n
	}
	return p
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}
