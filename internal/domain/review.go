package domain

import "time"

type Review struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
