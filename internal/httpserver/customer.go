package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	customersvc "storefront/internal/service/customer"
)

type customerResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	Membership string `json:"membership"`
}

func toCustomerResponse(cu domain.Customer) customerResponse {
	return customerResponse{
		ID:         cu.ID,
		FirstName:  cu.FirstName,
		LastName:   cu.LastName,
		Email:      cu.Email,
		Phone:      cu.Phone,
		BirthDate:  cu.BirthDate,
		Membership: cu.Membership,
	}
}

func listCustomers(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]customerResponse, 0, len(customers))
		for _, cu := range customers {
			out = append(out, toCustomerResponse(cu))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createCustomer(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		cu, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCustomerResponse(*cu))
	}
}

func getCustomer(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		cu, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(*cu))
	}
}

func updateCustomer(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in customersvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		cu, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(*cu))
	}
}

func patchCustomer(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in customersvc.PatchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		cu, err := svc.Patch(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(*cu))
	}
}
