package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	admin := Actor{UserID: 1, IsAdmin: true}
	customer := Actor{UserID: 2, IsAdmin: false}

	t.Run("admins may access every admin resource", func(t *testing.T) {
		for _, res := range []Resource{ResourceDashboard, ResourceOrders, ResourceUsers} {
			assert.True(t, Allowed(admin, res), "admin should access %s", res)
		}
	})

	t.Run("non-admins are denied everywhere", func(t *testing.T) {
		for _, res := range []Resource{ResourceDashboard, ResourceOrders, ResourceUsers} {
			assert.False(t, Allowed(customer, res), "customer should not access %s", res)
		}
	})

	t.Run("unknown resources are denied even for admins", func(t *testing.T) {
		assert.False(t, Allowed(admin, Resource("billing")), "unknown resources must default to deny")
	})
}
