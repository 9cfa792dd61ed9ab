package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForBusiness(t *testing.T) {
	f := ForBusiness("  Shop@Example.COM ")
	assert.Equal(t, "shop@example.com", f.BusinessEmail)
	assert.True(t, f.IsScoped())
	assert.Empty(t, f.OrderBy)

	assert.False(t, Filter{}.IsScoped())
	assert.False(t, ForBusiness("   ").IsScoped())
}
