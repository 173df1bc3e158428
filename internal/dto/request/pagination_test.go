package request_test

import (
	"testing"

	"planetarium-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestOffset(t *testing.T) {
	assert.Equal(t, 0, request.PaginatedRequest{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, request.PaginatedRequest{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 0, request.PaginatedRequest{Page: 0, PerPage: 10}.Offset())
}

func TestPaginatedRequestLimit(t *testing.T) {
	assert.Equal(t, 10, request.PaginatedRequest{PerPage: 10}.Limit())
	assert.Equal(t, 10, request.PaginatedRequest{}.Limit())
	assert.Equal(t, 100, request.PaginatedRequest{PerPage: 500}.Limit())
}
