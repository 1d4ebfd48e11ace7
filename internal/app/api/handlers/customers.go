package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fitdesk/memberdesk/internal/app/service/catalog"
	"github.com/fitdesk/memberdesk/internal/app/service/customer"
	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/response"
)

// @Summary      List customers
// @Description  Returns all customers, newest first, each with their resolved active membership.
// @Tags         Customer
// @Produce      json
// @Success      200  {object}  handlers.RespCustomerList
// @Router       /api/v1/customers [get]
func ApiListCustomers(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		rows, err := svc.List(c.Request.Context(), now)
		if err != nil {
			respondError(c, err)
			return
		}
		items := lo.Map(rows, func(cw *customer.CustomerWithMembership, _ int) *CustomerItem {
			return toCustomerItem(cw.Customer, cw.ActiveMembership, now)
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

type newCustomerFormResp struct {
	Plans []*PlanItem `json:"plans"`
}

// @Summary      New customer form data
// @Description  Returns the currently sellable plans for the signup form.
// @Tags         Customer
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/customers/create [get]
func ApiNewCustomerForm(catSvc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		plans, err := catSvc.ListActive(c.Request.Context(), now)
		if err != nil {
			respondError(c, err)
			return
		}
		window := catSvc.PlanExpiringSoonDays()
		items := lo.Map(plans, func(p *models.Plan, _ int) *PlanItem {
			return toPlanItem(p, now, window)
		})
		c.JSON(http.StatusOK, response.OKT(newCustomerFormResp{Plans: items}))
	}
}

// @Summary      Create customer
// @Description  Creates a customer and assigns the selected plan's membership atomically.
// @Tags         Customer
// @Accept       json
// @Produce      json
// @Param        request body customer.CreateInput true "Signup payload"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers [post]
func ApiCreateCustomer(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		cw, err := svc.Create(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toCustomerItem(cw.Customer, cw.ActiveMembership, time.Now())))
	}
}

// @Summary      Get customer
// @Tags         Customer
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers/{id} [get]
func ApiGetCustomer(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		cust, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		active, err := svc.ActiveMembership(c.Request.Context(), cust.ID, now)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toCustomerItem(cust, active, now)))
	}
}

func RegisterCustomerRoutes(r gin.IRouter, svc *customer.Service, catSvc *catalog.Service) {
	r.GET("/customers", ApiListCustomers(svc))
	r.GET("/customers/create", ApiNewCustomerForm(catSvc))
	r.GET("/customers/:id", ApiGetCustomer(svc))
	r.POST("/customers", ApiCreateCustomer(svc))
}
