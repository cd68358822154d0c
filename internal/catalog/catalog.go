// Package catalog реализует неизменяемый каталог товаров и отзывов.
//
// Каталог конструируется один раз при старте процесса и передается
// по ссылке компонентам, которые его читают; API изменения не существует.
// Цена всегда берется из каталога на стороне сервера — суммы от клиента
// не принимаются.
package catalog

import (
	"sort"
	"strings"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// statusLastUpdated — фиксированная метка времени для страницы статусов.
const statusLastUpdated = "2025-12-15T08:00:00Z"

// Catalog хранит список товаров и отзывов, зашитый в процесс.
type Catalog struct {
	products []models.Product
	reviews  []models.Review
}

// New создает каталог из переданных данных. Используется в тестах
// для подстановки фикстур.
func New(products []models.Product, reviews []models.Review) *Catalog {
	return &Catalog{products: products, reviews: reviews}
}

// Default возвращает каталог с данными магазина.
func Default() *Catalog {
	return New(defaultProducts, defaultReviews)
}

// Products возвращает товары, опционально отфильтрованные по игре
// (сравнение без учета регистра). Пустой game возвращает весь каталог.
func (c *Catalog) Products(game string) []models.Product {
	if game == "" {
		return c.products
	}
	var result []models.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Game, game) {
			result = append(result, p)
		}
	}
	return result
}

// Product возвращает товар по идентификатору.
func (c *Catalog) Product(productID string) (*models.Product, bool) {
	for i := range c.products {
		if c.products[i].ProductID == productID {
			return &c.products[i], true
		}
	}
	return nil, false
}

// StatusList возвращает срез статусов всех товаров.
func (c *Catalog) StatusList() []models.ProductStatus {
	result := make([]models.ProductStatus, 0, len(c.products))
	for _, p := range c.products {
		result = append(result, models.ProductStatus{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Game:        p.Game,
			Status:      p.Status,
			LastUpdated: statusLastUpdated,
		})
	}
	return result
}

// Reviews возвращает все отзывы.
func (c *Catalog) Reviews() []models.Review {
	return c.reviews
}

// Games возвращает игры в алфавитном порядке, каждая со своими товарами.
func (c *Catalog) Games() []models.Game {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range c.products {
		if _, ok := seen[p.Game]; !ok {
			seen[p.Game] = struct{}{}
			names = append(names, p.Game)
		}
	}
	sort.Strings(names)

	result := make([]models.Game, 0, len(names))
	for _, name := range names {
		var summaries []models.ProductSummary
		for _, p := range c.products {
			if p.Game == name {
				summaries = append(summaries, models.ProductSummary{
					ProductID: p.ProductID,
					Name:      p.Name,
					Tier:      p.Tier,
					Price:     p.Price,
					Status:    p.Status,
				})
			}
		}
		result = append(result, models.Game{Name: name, Products: summaries})
	}
	return result
}

// Stats возвращает агрегированные показатели каталога.
func (c *Catalog) Stats() models.Stats {
	games := make(map[string]struct{})
	undetected := 0
	for _, p := range c.products {
		games[p.Game] = struct{}{}
		if p.Status == models.ProductStatusUndetected {
			undetected++
		}
	}
	return models.Stats{
		TotalProducts:   len(c.products),
		TotalGames:      len(games),
		UndetectedCount: undetected,
		TotalReviews:    len(c.reviews),
	}
}
