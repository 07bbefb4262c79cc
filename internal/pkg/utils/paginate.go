package utils

import (
	"chamber-portal-service/internal/pkg/dto/requests"
	"strings"
)

// Paginate returns the requested page of items and the total item count. A
// page past the end is an empty, non-nil slice.
func Paginate[T any](items []T, pagination *requests.Pagination) ([]T, int) {
	total := len(items)
	if pagination == nil || pagination.PageSize <= 0 {
		return items, total
	}

	page := pagination.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * pagination.PageSize
	if start >= total {
		return []T{}, total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}
	return items[start:end], total
}

// Filter keeps the items keep returns true for, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ContainsFold reports whether any of fields contains needle, ignoring case.
// An empty needle matches everything.
func ContainsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
