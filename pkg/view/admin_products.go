package view

import (
	"time"

	"pehlione.com/catalogadmin/internal/backend"
)

// SpuListItem is one row of the product list page.
type SpuListItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PicURL     string `json:"picUrl"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
	SalesCount int    `json:"salesCount"`
	Sort       int    `json:"sort"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	CreatedAt  string `json:"createdAt"`
}

type SpuListPage struct {
	Items []SpuListItem `json:"items"`
	Total int64         `json:"total"`
}

func SpuStatusText(status int) string {
	switch status {
	case backend.SpuStatusEnable:
		return "On sale"
	case backend.SpuStatusDisable:
		return "Off shelf"
	default:
		return "Recycle bin"
	}
}

func NewSpuListPage(p backend.Page[backend.Spu]) SpuListPage {
	items := make([]SpuListItem, 0, len(p.List))
	for _, s := range p.List {
		item := SpuListItem{
			ID:         s.ID,
			Name:       s.Name,
			PicURL:     s.PicURL,
			Price:      MoneyFromFen(s.Price),
			Stock:      s.Stock,
			SalesCount: s.SalesCount,
			Sort:       s.Sort,
			Status:     s.Status,
			StatusText: SpuStatusText(s.Status),
		}
		if s.CreateTime > 0 {
			item.CreatedAt = time.UnixMilli(s.CreateTime).Format("2006-01-02 15:04")
		}
		items = append(items, item)
	}
	return SpuListPage{Items: items, Total: p.Total}
}
