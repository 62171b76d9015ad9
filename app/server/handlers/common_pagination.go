package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"todo-service/app/server/constants"
)

type listResponse[T any] struct {
	Limit   int   `json:"limit"`
	PageMax int64 `json:"page_max"`
	List    []T   `json:"list"`
}

// bindPagination 只在参数出现时才返回非 nil 指针
func (a *App) bindPagination(c echo.Context) (page *uint, limit *uint, err error) {
	params := c.QueryParams()
	b := echo.QueryParamsBinder(c)

	if params.Has("page") {
		page = new(uint)
		b.Uint("page", page)
	}
	if params.Has("limit") {
		limit = new(uint)
		b.Uint("limit", limit)
	}

	if err = b.BindError(); err != nil {
		return nil, nil, err
	}
	if page != nil && *page > constants.PaginationMaxPage {
		return nil, nil, fmt.Errorf("page should not exceed %d", uint(constants.PaginationMaxPage))
	}

	return page, limit, nil
}

func (a *App) parsePagination(page *uint, limit *uint) (bool, int, int) {
	if page != nil && *page == 0 && limit != nil && *limit == 0 {
		// 特殊参数：展示全部
		return true, -1, -1
	}
	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	var parsedPage, parsedLimit uint

	if page == nil || *page < 1 {
		parsedPage = 0
	} else if *page > constants.PaginationMaxPage {
		parsedPage = constants.PaginationMaxPage - 1
	} else {
		parsedPage = *page - 1
	}

	if limit == nil || *limit <= 0 {
		parsedLimit = constants.PaginationDefaultLimit
	} else if *limit > constants.PaginationMaxLimit {
		parsedLimit = constants.PaginationMaxLimit
	} else {
		parsedLimit = *limit
	}

	return false, int(parsedPage), int(parsedLimit)
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	} else {
		pageMax := count / int64(limit)
		if (count % int64(limit)) != 0 {
			pageMax++
		}
		return pageMax
	}
}
