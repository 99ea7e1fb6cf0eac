package mysql

import (
	"testing"

	"canteen-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

// Every FK target a fresh deployment needs must have seed rows,
// otherwise the first menu create or signup fails on a constraint.
func TestSeedDataCoversLookupTables(t *testing.T) {
	assert.Len(t, seedRoles, 2)
	assert.Equal(t, domain.RoleCustomer, seedRoles[0].ID)
	assert.Equal(t, domain.RoleAdmin, seedRoles[1].ID)

	assert.Len(t, seedStatuses, 6)
	names := make(map[uint64]string, len(seedStatuses))
	for _, s := range seedStatuses {
		names[s.ID] = s.Name
	}
	assert.Equal(t, "pending", names[domain.StatusPending])
	assert.Equal(t, "cancelled", names[domain.StatusCancelled])

	assert.NotEmpty(t, seedCategories)
	for _, c := range seedCategories {
		assert.NotZero(t, c.ID)
		assert.NotEmpty(t, c.Name)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "roles", domain.Role{}.TableName())
	assert.Equal(t, "users", domain.User{}.TableName())
	assert.Equal(t, "category", domain.Category{}.TableName())
	assert.Equal(t, "menu", domain.MenuItem{}.TableName())
	assert.Equal(t, "status", domain.Status{}.TableName())
	assert.Equal(t, "orders", domain.Order{}.TableName())
	assert.Equal(t, "order_items", domain.OrderItem{}.TableName())
	assert.Equal(t, "cart_items", domain.CartItem{}.TableName())
	assert.Equal(t, "push_subscriptions", domain.PushSubscription{}.TableName())
}
