package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fitdesk/memberdesk/internal/app/service/catalog"
	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/response"
)

// @Summary      List plans
// @Description  Returns all plans in display order with derived pricing fields.
// @Tags         Plan
// @Produce      json
// @Success      200  {object}  handlers.RespPlanList
// @Router       /api/v1/plans [get]
func ApiListPlans(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		window := svc.PlanExpiringSoonDays()
		items := lo.Map(plans, func(p *models.Plan, _ int) *PlanItem {
			return toPlanItem(p, now, window)
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      List active plans
// @Description  Returns plans that are active and inside their validity window, for selection pickers.
// @Tags         Plan
// @Produce      json
// @Success      200  {object}  handlers.RespPlanList
// @Router       /api/v1/plans/active [get]
func ApiListActivePlans(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		plans, err := svc.ListActive(c.Request.Context(), now)
		if err != nil {
			respondError(c, err)
			return
		}
		window := svc.PlanExpiringSoonDays()
		items := lo.Map(plans, func(p *models.Plan, _ int) *PlanItem {
			return toPlanItem(p, now, window)
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Get plan
// @Tags         Plan
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {object}  handlers.RespPlan
// @Router       /api/v1/plans/{id} [get]
func ApiGetPlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toPlanItem(plan, time.Now(), svc.PlanExpiringSoonDays())))
	}
}

// @Summary      Create plan
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body catalog.PlanInput true "Plan payload"
// @Success      200  {object}  handlers.RespPlan
// @Router       /api/v1/plans [post]
func ApiCreatePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.PlanInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		plan, err := svc.Create(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toPlanItem(plan, time.Now(), svc.PlanExpiringSoonDays())))
	}
}

// @Summary      Update plan
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        id path string true "Plan ID"
// @Param        request body catalog.PlanInput true "Plan payload"
// @Success      200  {object}  handlers.RespPlan
// @Router       /api/v1/plans/{id} [put]
func ApiUpdatePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.PlanInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		plan, err := svc.Update(c.Request.Context(), c.Param("id"), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toPlanItem(plan, time.Now(), svc.PlanExpiringSoonDays())))
	}
}

// @Summary      Delete plan
// @Description  Deletes a plan. Existing memberships keep their snapshot and are unaffected.
// @Tags         Plan
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/plans/{id} [delete]
func ApiDeletePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterPlanRoutes(r gin.IRouter, svc *catalog.Service) {
	r.GET("/plans", ApiListPlans(svc))
	r.GET("/plans/active", ApiListActivePlans(svc))
	r.GET("/plans/:id", ApiGetPlan(svc))
	r.POST("/plans", ApiCreatePlan(svc))
	r.PUT("/plans/:id", ApiUpdatePlan(svc))
	r.DELETE("/plans/:id", ApiDeletePlan(svc))
}
