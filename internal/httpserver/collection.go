package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	collectionsvc "storefront/internal/service/collection"
)

type collectionResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ProductsCount int64  `json:"products_count"`
}

func toCollectionResponse(col domain.Collection) collectionResponse {
	return collectionResponse{ID: col.ID, Title: col.Title, ProductsCount: col.ProductsCount}
}

func listCollections(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]collectionResponse, 0, len(collections))
		for _, col := range collections {
			out = append(out, toCollectionResponse(col))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createCollection(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in collectionsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		col, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCollectionResponse(*col))
	}
}

func getCollection(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		col, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCollectionResponse(*col))
	}
}

func updateCollection(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in collectionsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		col, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCollectionResponse(*col))
	}
}

func patchCollection(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in collectionsvc.PatchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		col, err := svc.Patch(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCollectionResponse(*col))
	}
}

func deleteCollection(svc *collectionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
