package handlers

import (
	"encoding/json"
	"net/url"
	"strconv"

	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"

	"github.com/gin-gonic/gin"
)

// PaginationMetadata is serialized into the X-Pagination response header.
type PaginationMetadata struct {
	TotalCount       int     `json:"totalCount"`
	PageSize         int     `json:"pageSize"`
	PageNumber       int     `json:"pageNumber"`
	TotalPages       int     `json:"totalPages"`
	HasPrevious      bool    `json:"hasPrevious"`
	HasNext          bool    `json:"hasNext"`
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     *string `json:"nextPageLink"`
}

func newPaginationMetadata[T any](path string, params query.Parameters, page paging.Page[T]) PaginationMetadata {
	meta := PaginationMetadata{
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		PageNumber:  page.PageNumber,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
	if meta.HasPrevious {
		link := pageLink(path, params, page.PageNumber-1, page.PageSize)
		meta.PreviousPageLink = &link
	}
	if meta.HasNext {
		link := pageLink(path, params, page.PageNumber+1, page.PageSize)
		meta.NextPageLink = &link
	}
	return meta
}

// pageLink keeps the caller's filter and sort and moves to pageNumber.
func pageLink(path string, params query.Parameters, pageNumber, pageSize int) string {
	v := url.Values{}
	if params.Filters != "" {
		v.Set("filters", params.Filters)
	}
	if params.SortOrder != "" {
		v.Set("sortOrder", params.SortOrder)
	}
	v.Set("pageNumber", strconv.Itoa(pageNumber))
	v.Set("pageSize", strconv.Itoa(pageSize))
	return path + "?" + v.Encode()
}

func writePaginationHeader(c *gin.Context, meta PaginationMetadata) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	c.Header("X-Pagination", string(raw))
}
