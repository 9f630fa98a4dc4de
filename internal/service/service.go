// Package service contains the business logic between the HTTP handlers
// and the repositories. Services validate input, enforce ownership and
// translate repository errors into the package sentinels.
package service

import (
	"strconv"

	"jumpingkids/internal/repository"
)

// creatorKey is the created_by value for rows owned by a user. Catalog
// rows use model.SystemAuthor instead and never collide with it.
func creatorKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// clampPage normalizes paging input to the repository's expectations.
func clampPage(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}
