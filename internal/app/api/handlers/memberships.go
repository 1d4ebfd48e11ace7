package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fitdesk/memberdesk/internal/app/service/membership"
	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/response"
)

// @Summary      List plan templates
// @Description  Returns membership rows not assigned to a customer, newest first.
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespMembershipList
// @Router       /api/v1/memberships [get]
func ApiListMembershipTemplates(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListTemplates(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		items := lo.Map(rows, func(m *models.Membership, _ int) *MembershipItem {
			return toMembershipItem(m, now)
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      List active plan templates
// @Description  Returns active plan templates ordered by price, for selection pickers.
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespMembershipList
// @Router       /api/v1/memberships/active [get]
func ApiListActiveMembershipTemplates(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListActiveTemplates(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		items := lo.Map(rows, func(m *models.Membership, _ int) *MembershipItem {
			return toMembershipItem(m, now)
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Get membership
// @Tags         Membership
// @Produce      json
// @Param        id path string true "Membership ID"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/memberships/{id} [get]
func ApiGetMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMembershipItem(m, time.Now())))
	}
}

// @Summary      Create plan template
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Param        request body membership.TemplateInput true "Template payload"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/memberships [post]
func ApiCreateMembershipTemplate(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in membership.TemplateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		m, err := svc.CreateTemplate(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMembershipItem(m, time.Now())))
	}
}

// @Summary      Update plan template
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Param        id path string true "Membership ID"
// @Param        request body membership.TemplateInput true "Template payload"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/memberships/{id} [put]
func ApiUpdateMembershipTemplate(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in membership.TemplateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		m, err := svc.UpdateTemplate(c.Request.Context(), c.Param("id"), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMembershipItem(m, time.Now())))
	}
}

// @Summary      Delete plan template
// @Description  Refuses to delete membership rows assigned to a customer.
// @Tags         Membership
// @Produce      json
// @Param        id path string true "Membership ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/memberships/{id} [delete]
func ApiDeleteMembershipTemplate(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterMembershipRoutes(r gin.IRouter, svc *membership.Service) {
	r.GET("/memberships", ApiListMembershipTemplates(svc))
	r.GET("/memberships/active", ApiListActiveMembershipTemplates(svc))
	r.GET("/memberships/:id", ApiGetMembership(svc))
	r.POST("/memberships", ApiCreateMembershipTemplate(svc))
	r.PUT("/memberships/:id", ApiUpdateMembershipTemplate(svc))
	r.DELETE("/memberships/:id", ApiDeleteMembershipTemplate(svc))
}
