package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	reviewsvc "storefront/internal/service/review"
)

type reviewResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func toReviewResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:          rv.ID,
		ProductID:   rv.ProductID,
		Name:        rv.Name,
		Description: rv.Description,
		Date:        rv.Date.Format("2006-01-02"),
	}
}

func listReviews(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		reviews, err := svc.List(c.Request.Context(), productID)
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]reviewResponse, 0, len(reviews))
		for _, rv := range reviews {
			out = append(out, toReviewResponse(rv))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createReview(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in reviewsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		rv, err := svc.Create(c.Request.Context(), productID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toReviewResponse(*rv))
	}
}

func getReview(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		reviewID, ok := int64Param(c, "reviewID")
		if !ok {
			return
		}
		rv, err := svc.Get(c.Request.Context(), productID, reviewID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReviewResponse(*rv))
	}
}

func updateReview(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		reviewID, ok := int64Param(c, "reviewID")
		if !ok {
			return
		}
		var in reviewsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		rv, err := svc.Update(c.Request.Context(), productID, reviewID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReviewResponse(*rv))
	}
}

func patchReview(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		reviewID, ok := int64Param(c, "reviewID")
		if !ok {
			return
		}
		var in reviewsvc.PatchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		rv, err := svc.Patch(c.Request.Context(), productID, reviewID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReviewResponse(*rv))
	}
}

func deleteReview(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := int64Param(c, "id")
		if !ok {
			return
		}
		reviewID, ok := int64Param(c, "reviewID")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), productID, reviewID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
