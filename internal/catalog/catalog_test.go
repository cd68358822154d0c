package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

func TestDefault_Fixture(t *testing.T) {
	c := Default()

	stats := c.Stats()
	assert.Equal(t, 14, stats.TotalProducts)
	assert.Equal(t, 7, stats.TotalGames)
	assert.Equal(t, 11, stats.UndetectedCount)
	assert.Equal(t, 10, stats.TotalReviews)
}

func TestProduct_Lookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name      string
		productID string
		wantFound bool
		wantPrice float64
	}{
		{
			name:      "существующий товар",
			productID: "rust-disconnect",
			wantFound: true,
			wantPrice: 29.99,
		},
		{
			name:      "неизвестный товар",
			productID: "nonexistent-id",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, found := c.Product(tt.productID)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				require.NotNil(t, p)
				assert.Equal(t, tt.wantPrice, p.Price)
			}
		})
	}
}

func TestProducts_GameFilter(t *testing.T) {
	c := Default()

	all := c.Products("")
	assert.Len(t, all, 14)

	rust := c.Products("rust")
	assert.Len(t, rust, 3)
	for _, p := range rust {
		assert.Equal(t, "Rust", p.Game)
	}

	assert.Empty(t, c.Products("Quake"))
}

func TestGames_SortedWithSummaries(t *testing.T) {
	c := Default()

	games := c.Games()
	require.Len(t, games, 7)
	assert.Equal(t, "Arc Raiders", games[0].Name)
	assert.Equal(t, "Valorant", games[6].Name)

	for _, g := range games {
		assert.NotEmpty(t, g.Products)
	}
}

func TestStatusList_FixedTimestamp(t *testing.T) {
	c := New([]models.Product{
		{ProductID: "p1", Name: "One", Game: "G", Status: "testing"},
	}, nil)

	statuses := c.StatusList()
	require.Len(t, statuses, 1)
	assert.Equal(t, "p1", statuses[0].ProductID)
	assert.Equal(t, "testing", statuses[0].Status)
	assert.Equal(t, "2025-12-15T08:00:00Z", statuses[0].LastUpdated)
}
