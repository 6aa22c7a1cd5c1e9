package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"menucatalog/database"
	"menucatalog/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves catalog downloads.
type ExportHandler struct{}

// NewExportHandler creates an export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV dumps the catalog as CSV
// @Summary Export the menu catalog as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file "CSV file"
// @Failure 500 {object} MessageResponse
// @Router /menu/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var items []models.MenuItem
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM keeps non-ASCII names readable when opened in Excel
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Name", "Category", "Price", "Calories", "Ingredients", "Description", "Created At", "Updated At"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	for _, item := range items {
		row := []string{
			fmt.Sprintf("%d", item.ID),
			item.Name,
			item.Category,
			fmt.Sprintf("%.2f", item.Price),
			fmt.Sprintf("%.0f", item.Calories),
			strings.Join(item.Ingredients, ", "),
			item.Description,
			item.CreatedAt.Format(time.RFC3339),
			item.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "failed to generate CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("menu_catalog_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel dumps the catalog as an Excel workbook
// @Summary Export the menu catalog as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel file"
// @Failure 500 {object} MessageResponse
// @Router /menu/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var items []models.MenuItem
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Menu Catalog"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	headers := []string{"ID", "Name", "Category", "Price", "Calories", "Ingredients", "Description", "Created At", "Updated At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		values := []interface{}{
			item.ID,
			item.Name,
			item.Category,
			item.Price,
			item.Calories,
			strings.Join(item.Ingredients, ", "),
			item.Description,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
			item.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	// readable column widths
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "F", "G", 40)
	f.SetColWidth(sheetName, "H", "I", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("menu_catalog_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
