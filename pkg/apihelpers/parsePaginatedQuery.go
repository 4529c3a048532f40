package apihelpers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const maxPageSize = 100

type PaginatedQuery struct {
	Page   int64
	Limit  int64
	Sort   bson.M
	Filter bson.M
}

// ParsePaginatedQueryFromCtx reads page, limit, sort and filter from the
// query string. Sort and filter are JSON objects; the limit is capped so a
// single request cannot pull an unbounded result set.
func ParsePaginatedQueryFromCtx(c *gin.Context) (*PaginatedQuery, error) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		return nil, err
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	sort := bson.M{}
	if sortStr := c.Query("sort"); sortStr != "" {
		if err := json.Unmarshal([]byte(sortStr), &sort); err != nil {
			return nil, err
		}
	}

	filter := bson.M{}
	if filterStr := c.Query("filter"); filterStr != "" {
		if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
			return nil, err
		}
	}

	return &PaginatedQuery{
		Page:   page,
		Limit:  limit,
		Sort:   sort,
		Filter: filter,
	}, nil
}
