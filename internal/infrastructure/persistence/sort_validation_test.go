package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder(" asc ", "DESC"))
	assert.Equal(t, "DESC", ValidateSortOrder("desc", "ASC"))
	assert.Equal(t, "ASC", ValidateSortOrder("", "ASC"))
	assert.Equal(t, "DESC", ValidateSortOrder("drop table", "DESC"))
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "name", ValidateSortField("name", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("name; DROP TABLE products", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("name", BillSortFields, "created_at"))
}
