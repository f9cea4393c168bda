package handlers

import "github.com/gofiber/fiber/v2"

const (
	defaultPageSize   = 10
	defaultPageNumber = 1
)

// pagedResponse is the envelope returned by every paginated listing.
type pagedResponse struct {
	Data               interface{} `json:"data"`
	PageSize           int         `json:"pageSize"`
	PageNumber         int         `json:"pageNumber"`
	TotalNumberOfPages int         `json:"totalNumberOfPages"`
}

// pageParams reads pageSize and pageNumber from the query string, falling
// back to the defaults for absent or non-positive values. No upper bound is
// enforced on pageSize.
func pageParams(c *fiber.Ctx) (pageSize, pageNumber int) {
	pageSize = c.QueryInt("pageSize", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	pageNumber = c.QueryInt("pageNumber", defaultPageNumber)
	if pageNumber < 1 {
		pageNumber = defaultPageNumber
	}
	return pageSize, pageNumber
}
