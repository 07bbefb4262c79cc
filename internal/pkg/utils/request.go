package utils

import (
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseOptionalBoolQuery returns nil when the query parameter is absent or not a bool.
func ParseOptionalBoolQuery(r *http.Request, key string) *bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

// ParseDate parses a YYYY-MM-DD date in loc. An empty input returns the zero time.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(constvars.AppDateFormat, raw, loc)
}
