package api

import (
	"sort"
	"strconv"
	"strings"

	"menucatalog/models"
)

// ListQuery holds the raw listing parameters. Values stay strings so
// malformed numbers can be ignored instead of rejected.
type ListQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
	MaxCal   string `form:"max_cal"`
	Sort     string `form:"sort"`
	Page     string `form:"page"`
	PerPage  string `form:"per_page"`
}

// paramPresent reports whether a query parameter carries a usable
// value. Values containing "{{" are unresolved template placeholders
// from API tooling and are treated as absent.
func paramPresent(val string) bool {
	return val != "" && !strings.Contains(val, "{{")
}

// parseNumber parses a numeric parameter; ok is false for values that
// are absent, placeholders, or not a number.
func parseNumber(val string) (float64, bool) {
	if !paramPresent(val) {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ApplyFilters runs the filter chain in fixed order: text query,
// category, min_price, max_price, max_cal. Each filter is a full pass
// over the current result set.
func ApplyFilters(items []models.MenuItem, q ListQuery) []models.MenuItem {
	result := items

	if paramPresent(q.Q) {
		needle := strings.ToLower(q.Q)
		filtered := make([]models.MenuItem, 0, len(result))
		for _, item := range result {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				filtered = append(filtered, item)
			}
		}
		result = filtered
	}

	if paramPresent(q.Category) {
		filtered := make([]models.MenuItem, 0, len(result))
		for _, item := range result {
			if item.Category == q.Category {
				filtered = append(filtered, item)
			}
		}
		result = filtered
	}

	if min, ok := parseNumber(q.MinPrice); ok {
		filtered := make([]models.MenuItem, 0, len(result))
		for _, item := range result {
			if item.Price >= min {
				filtered = append(filtered, item)
			}
		}
		result = filtered
	}

	if max, ok := parseNumber(q.MaxPrice); ok {
		filtered := make([]models.MenuItem, 0, len(result))
		for _, item := range result {
			if item.Price <= max {
				filtered = append(filtered, item)
			}
		}
		result = filtered
	}

	if maxCal, ok := parseNumber(q.MaxCal); ok {
		filtered := make([]models.MenuItem, 0, len(result))
		for _, item := range result {
			if item.Calories <= maxCal {
				filtered = append(filtered, item)
			}
		}
		result = filtered
	}

	return result
}

// sortKey extracts a comparable key for a sort field. Numeric fields
// compare numerically, string fields lexicographically (timestamps are
// RFC3339, so lexicographic order is chronological). Unknown fields
// report neither, leaving the order untouched.
func sortKey(item models.MenuItem, field string) (num float64, str string, numeric, known bool) {
	switch field {
	case "id":
		return float64(item.ID), "", true, true
	case "price":
		return item.Price, "", true, true
	case "calories":
		return item.Calories, "", true, true
	case "name":
		return 0, item.Name, false, true
	case "category":
		return 0, item.Category, false, true
	case "description":
		return 0, item.Description, false, true
	case "created_at":
		return 0, item.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"), false, true
	case "updated_at":
		return 0, item.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"), false, true
	}
	return 0, "", false, false
}

// SortItems sorts in place by a "field" or "field:order" expression,
// order asc by default. The sort is stable so equal keys keep their
// snapshot order.
func SortItems(items []models.MenuItem, sortParam string) {
	if !paramPresent(sortParam) {
		return
	}
	parts := strings.SplitN(sortParam, ":", 2)
	field := parts[0]
	desc := len(parts) == 2 && parts[1] == "desc"

	sort.SliceStable(items, func(i, j int) bool {
		ni, si, numeric, known := sortKey(items[i], field)
		if !known {
			return false
		}
		nj, sj, _, _ := sortKey(items[j], field)
		if numeric {
			if desc {
				return nj < ni
			}
			return ni < nj
		}
		if desc {
			return sj < si
		}
		return si < sj
	})
}

// Paginate slices one page out of the filtered result and computes the
// pagination metadata. Out-of-range pages return an empty page with
// metadata intact.
func Paginate(items []models.MenuItem, pageParam, perPageParam string) ([]models.MenuItem, Pagination) {
	page := 1
	if n, ok := parseNumber(pageParam); ok && int(n) > 0 {
		page = int(n)
	}
	perPage := 10
	if n, ok := parseNumber(perPageParam); ok && int(n) > 0 {
		perPage = int(n)
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageData := make([]models.MenuItem, 0, end-start)
	pageData = append(pageData, items[start:end]...)

	return pageData, Pagination{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
