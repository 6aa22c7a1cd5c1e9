package api

import (
	"testing"
	"time"

	"menucatalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.MenuItem {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []models.MenuItem{
		{ID: 1, Name: "Nasi Goreng", Category: "Main Course", Price: 10, Calories: 450, CreatedAt: base, UpdatedAt: base},
		{ID: 2, Name: "Es Teh", Category: "Drink", Price: 30, Calories: 90, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Mie Goreng", Category: "Main Course", Price: 20, Calories: 520, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
	}
}

func TestApplyFilters_TextQuery(t *testing.T) {
	result := ApplyFilters(sampleItems(), ListQuery{Q: "goreng"})
	require.Len(t, result, 2)
	assert.Equal(t, "Nasi Goreng", result[0].Name)
	assert.Equal(t, "Mie Goreng", result[1].Name)
}

func TestApplyFilters_Category(t *testing.T) {
	result := ApplyFilters(sampleItems(), ListQuery{Category: "Drink"})
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestApplyFilters_PriceBounds(t *testing.T) {
	result := ApplyFilters(sampleItems(), ListQuery{MinPrice: "15", MaxPrice: "25"})
	require.Len(t, result, 1)
	assert.Equal(t, 20.0, result[0].Price)

	// bounds are inclusive
	result = ApplyFilters(sampleItems(), ListQuery{MinPrice: "10", MaxPrice: "30"})
	assert.Len(t, result, 3)
}

func TestApplyFilters_MaxCalories(t *testing.T) {
	result := ApplyFilters(sampleItems(), ListQuery{MaxCal: "450"})
	require.Len(t, result, 2)
	for _, item := range result {
		assert.LessOrEqual(t, item.Calories, 450.0)
	}
}

func TestApplyFilters_Combined(t *testing.T) {
	result := ApplyFilters(sampleItems(), ListQuery{Q: "goreng", Category: "Main Course", MaxCal: "500"})
	require.Len(t, result, 1)
	assert.Equal(t, "Nasi Goreng", result[0].Name)
}

func TestApplyFilters_MalformedNumbersIgnored(t *testing.T) {
	// unparseable numeric params behave as if absent
	result := ApplyFilters(sampleItems(), ListQuery{MinPrice: "cheap", MaxPrice: "not-a-number", MaxCal: "??"})
	assert.Len(t, result, 3)
}

func TestApplyFilters_TemplatePlaceholderIgnored(t *testing.T) {
	// unresolved placeholders from calling tools count as absent
	result := ApplyFilters(sampleItems(), ListQuery{Q: "{{search}}", Category: "{{category}}", MinPrice: "{{min}}"})
	assert.Len(t, result, 3)
}

func TestSortItems_PriceDesc(t *testing.T) {
	items := sampleItems()
	SortItems(items, "price:desc")
	prices := []float64{items[0].Price, items[1].Price, items[2].Price}
	assert.Equal(t, []float64{30, 20, 10}, prices)
}

func TestSortItems_DefaultAsc(t *testing.T) {
	items := sampleItems()
	SortItems(items, "price")
	prices := []float64{items[0].Price, items[1].Price, items[2].Price}
	assert.Equal(t, []float64{10, 20, 30}, prices)
}

func TestSortItems_StringField(t *testing.T) {
	items := sampleItems()
	SortItems(items, "name")
	assert.Equal(t, "Es Teh", items[0].Name)
	assert.Equal(t, "Mie Goreng", items[1].Name)
	assert.Equal(t, "Nasi Goreng", items[2].Name)
}

func TestSortItems_UnknownFieldKeepsOrder(t *testing.T) {
	items := sampleItems()
	SortItems(items, "flavor:desc")
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, 3, items[2].ID)
}

func TestSortItems_StableWithinEqualKeys(t *testing.T) {
	items := sampleItems()
	SortItems(items, "category")
	// Main Course items keep their snapshot order
	assert.Equal(t, "Drink", items[0].Category)
	assert.Equal(t, 1, items[1].ID)
	assert.Equal(t, 3, items[2].ID)
}

func TestPaginate_EmptySet(t *testing.T) {
	data, p := Paginate(nil, "", "")
	assert.Empty(t, data)
	assert.NotNil(t, data)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginate_TotalPages(t *testing.T) {
	items := make([]models.MenuItem, 25)
	for i := range items {
		items[i] = models.MenuItem{ID: i + 1}
	}

	data, p := Paginate(items, "1", "10")
	assert.Len(t, data, 10)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	data, p = Paginate(items, "3", "10")
	assert.Len(t, data, 5)
	assert.Equal(t, 21, data[0].ID)

	// out-of-range page: empty data, metadata intact
	data, p = Paginate(items, "4", "10")
	assert.Empty(t, data)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 4, p.Page)
}

func TestPaginate_NonNumericDefaults(t *testing.T) {
	items := sampleItems()
	data, p := Paginate(items, "abc", "{{per_page}}")
	assert.Len(t, data, 3)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestParamPresent(t *testing.T) {
	assert.False(t, paramPresent(""))
	assert.False(t, paramPresent("{{q}}"))
	assert.True(t, paramPresent("burger"))
}
