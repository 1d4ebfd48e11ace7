package handlers

import (
	"github.com/fitdesk/memberdesk/internal/app/service/statistics"
	"github.com/fitdesk/memberdesk/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespPlan wraps a single PlanItem in the standard envelope.
type RespPlan struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    PlanItem                 `json:"data"`
}

// RespPlanList wraps a list of PlanItem in the standard envelope.
type RespPlanList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []PlanItem               `json:"data"`
}

// RespMembership wraps a single MembershipItem in the standard envelope.
type RespMembership struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    MembershipItem           `json:"data"`
}

// RespMembershipList wraps a list of MembershipItem in the standard envelope.
type RespMembershipList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []MembershipItem         `json:"data"`
}

// RespCustomer wraps a single CustomerItem in the standard envelope.
type RespCustomer struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    CustomerItem             `json:"data"`
}

// RespCustomerList wraps a list of CustomerItem in the standard envelope.
type RespCustomerList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []CustomerItem           `json:"data"`
}

// RespListMemberships wraps ListMembershipsResponse in the standard envelope.
type RespListMemberships struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    ListMembershipsResponse  `json:"data"`
}

// RespMembershipStatistic wraps MembershipStatisticResponse in the standard envelope.
type RespMembershipStatistic struct {
	Code    response.APIResponseCode               `json:"code"`
	Message string                                 `json:"message"`
	Data    statistics.MembershipStatisticResponse `json:"data"`
}
