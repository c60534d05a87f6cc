package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
	productsvc "storefront/internal/service/product"
)

type productResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Slug         string  `json:"slug"`
	Inventory    int     `json:"inventory"`
	UnitPrice    float64 `json:"unit_price"`
	PriceWithTax float64 `json:"price_with_tax"`
	Collection   int64   `json:"collection"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Slug:         p.Slug,
		Inventory:    p.Inventory,
		UnitPrice:    p.UnitPrice.InexactFloat64(),
		PriceWithTax: p.PriceWithTax().InexactFloat64(),
		Collection:   p.CollectionID,
	}
}

func listProducts(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := productFilterFromQuery(c)
		if err != nil {
			respondError(c, err)
			return
		}
		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// productFilterFromQuery reads the filter/search/ordering params. Filters
// compose; the repository applies them together.
func productFilterFromQuery(c *gin.Context) (productrepo.ListFilter, error) {
	var filter productrepo.ListFilter

	if v := c.Query("collection_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, domain.NewValidationError("collection_id", "Enter a number.")
		}
		filter.CollectionID = &id
	}
	if v := c.Query("unit_price_gt"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, domain.NewValidationError("unit_price_gt", "Enter a number.")
		}
		filter.UnitPriceGT = &price
	}
	if v := c.Query("unit_price_lt"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, domain.NewValidationError("unit_price_lt", "Enter a number.")
		}
		filter.UnitPriceLT = &price
	}
	filter.Search = c.Query("search")
	filter.Ordering = c.Query("ordering")
	return filter, nil
}

func createProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toProductResponse(*p))
	}
}

func getProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func updateProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		p, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func patchProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}
		var in productsvc.PatchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		p, err := svc.Patch(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func deleteProduct(svc *productsvc.Service) gin.HandlerFunc {
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
