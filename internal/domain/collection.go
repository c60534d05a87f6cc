package domain

type Collection struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// ProductsCount is populated on reads only.
	ProductsCount int64 `json:"productsCount"`
}
