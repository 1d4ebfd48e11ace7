package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fitdesk/memberdesk/internal/app/service/membership"
	"github.com/fitdesk/memberdesk/internal/app/service/statistics"
	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/response"
	"github.com/fitdesk/memberdesk/pkg/types"
)

type ListMembershipsResponse struct {
	Items []*MembershipItem `json:"items"`
	Total int64             `json:"total"`
}

// @Summary      List memberships
// @Description  Paginated membership listing with filters and sorting for back office tooling.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body membership.ScanMembershipsRequest true "Listing request"
// @Success      200  {object}  handlers.RespListMemberships
// @Router       /api/v1/admin/list_memberships [post]
func ApiListMemberships(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.ScanMembershipsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		res, err := svc.ScanMemberships(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		out := &ListMembershipsResponse{
			Items: lo.Map(res.Items, func(m *models.Membership, _ int) *MembershipItem {
				return toMembershipItem(m, now)
			}),
			Total: res.Total,
		}
		c.JSON(http.StatusOK, response.OKT(out))
	}
}

type assignMembershipReq struct {
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	StartDate  string `json:"start_date"`
}

// @Summary      Assign membership
// @Description  Assigns a plan's membership to an existing customer.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.assignMembershipReq true "Assignment request"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/assign_membership [post]
func ApiAssignMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignMembershipReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		if req.CustomerID == "" || req.PlanID == "" {
			respondBadRequest(c, "customer_id and plan_id are required")
			return
		}
		start, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			respondBadRequest(c, "start_date must be a valid date")
			return
		}
		m, err := svc.Assign(c.Request.Context(), req.CustomerID, req.PlanID, start)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMembershipItem(m, time.Now())))
	}
}

type setMembershipStatusReq struct {
	MembershipID string `json:"membership_id"`
	Status       string `json:"status"`
}

// @Summary      Set membership status
// @Description  Flips the administrative status flag. Dates and expiry are unaffected.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.setMembershipStatusReq true "Status update request"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/set_membership_status [post]
func ApiSetMembershipStatus(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setMembershipStatusReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		if req.MembershipID == "" {
			respondBadRequest(c, "membership_id is required")
			return
		}
		status := types.MembershipStatus(req.Status)
		if !status.Valid() {
			respondBadRequest(c, "status must be one of active, inactive")
			return
		}
		m, err := svc.SetStatus(c.Request.Context(), req.MembershipID, status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMembershipItem(m, time.Now())))
	}
}

// @Summary      Membership statistics
// @Description  Returns the requested dashboard statistic series, computed concurrently.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.MembershipStatisticRequest true "Statistic request"
// @Success      200  {object}  handlers.RespMembershipStatistic
// @Router       /api/v1/admin/get_membership_statistic [post]
func ApiGetMembershipStatistic(stats *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.MembershipStatisticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		if len(req.DataItems) == 0 {
			respondBadRequest(c, "data_items is required")
			return
		}
		res, err := stats.GetMembershipStatistic(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, memSvc *membership.Service, stats *statistics.Service) {
	r.POST("/list_memberships", ApiListMemberships(memSvc))
	r.POST("/assign_membership", ApiAssignMembership(memSvc))
	r.POST("/set_membership_status", ApiSetMembershipStatus(memSvc))
	r.POST("/get_membership_statistic", ApiGetMembershipStatistic(stats))
}
