package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterPlanRoutes(g, nil)
	RegisterMembershipRoutes(g, nil)
	RegisterCustomerRoutes(g, nil, nil)
	RegisterAdminRoutes(g.Group("/admin"), nil, nil)
	RegisterHealthRoutes(r)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("GET /healthz"))
	require.True(t, contains("GET /api/v1/plans"))
	require.True(t, contains("GET /api/v1/plans/active"))
	require.True(t, contains("GET /api/v1/plans/:id"))
	require.True(t, contains("POST /api/v1/plans"))
	require.True(t, contains("PUT /api/v1/plans/:id"))
	require.True(t, contains("DELETE /api/v1/plans/:id"))
	require.True(t, contains("GET /api/v1/memberships"))
	require.True(t, contains("GET /api/v1/memberships/active"))
	require.True(t, contains("POST /api/v1/memberships"))
	require.True(t, contains("GET /api/v1/customers"))
	require.True(t, contains("GET /api/v1/customers/create"))
	require.True(t, contains("POST /api/v1/customers"))
	require.True(t, contains("POST /api/v1/admin/list_memberships"))
	require.True(t, contains("POST /api/v1/admin/assign_membership"))
	require.True(t, contains("POST /api/v1/admin/set_membership_status"))
	require.True(t, contains("POST /api/v1/admin/get_membership_statistic"))
}
