package models

// Review представляет отзыв о товаре. Отзывы, как и товары,
// зашиты в каталог и не редактируются.
type Review struct {
	ReviewID    string `json:"review_id"`
	UserName    string `json:"user_name"`
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
}
