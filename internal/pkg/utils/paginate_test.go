package utils

import (
	"chamber-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("First Page", func(t *testing.T) {
		page, total := Paginate(items, &requests.Pagination{Page: 1, PageSize: 2})
		assert.Equal(t, []int{1, 2}, page)
		assert.Equal(t, 5, total)
	})

	t.Run("Last Partial Page", func(t *testing.T) {
		page, total := Paginate(items, &requests.Pagination{Page: 3, PageSize: 2})
		assert.Equal(t, []int{5}, page)
		assert.Equal(t, 5, total)
	})

	t.Run("Past The End", func(t *testing.T) {
		page, total := Paginate(items, &requests.Pagination{Page: 9, PageSize: 2})
		assert.NotNil(t, page)
		assert.Empty(t, page)
		assert.Equal(t, 5, total)
	})

	t.Run("No Pagination", func(t *testing.T) {
		page, total := Paginate(items, nil)
		assert.Equal(t, items, page)
		assert.Equal(t, 5, total)
	})
}

func TestFilterAndContainsFold(t *testing.T) {
	names := []string{"Dr. Rahman", "Dr. Karim", "Dr. Rahim"}
	filtered := Filter(names, func(name string) bool { return ContainsFold("rah", name) })
	assert.Equal(t, []string{"Dr. Rahman", "Dr. Rahim"}, filtered)

	assert.True(t, ContainsFold("", "anything"))
	assert.True(t, ContainsFold("CARDIO", "Neurology", "Cardiology"))
	assert.False(t, ContainsFold("derma", "Neurology", "Cardiology"))
}

func TestBuildPaginationResponse(t *testing.T) {
	pagination := BuildPaginationResponse(25, 2, 10, "/api/v1/doctors")
	assert.Equal(t, "/api/v1/doctors?page=3&page_size=10", pagination.NextURL)
	assert.Equal(t, "/api/v1/doctors?page=1&page_size=10", pagination.PrevURL)

	last := BuildPaginationResponse(20, 2, 10, "/api/v1/doctors")
	assert.Empty(t, last.NextURL)
}
