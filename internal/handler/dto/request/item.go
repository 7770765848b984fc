package request

import (
	"travel-booking/internal/domain/item"
	"travel-booking/internal/usecase/queries"
)

type ListItemsQuery struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=destination activity"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Cursor string `form:"cursor"`
}

func (q ListItemsQuery) Filters() (queries.ItemFilters, error) {
	if q.Kind == "" {
		return queries.ItemFilters{}, nil
	}
	kind, err := item.NewKind(q.Kind)
	if err != nil {
		return queries.ItemFilters{}, err
	}
	return queries.ItemFilters{Kind: &kind}, nil
}

type PageQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Cursor string `form:"cursor"`
}
