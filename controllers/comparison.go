package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"comparehubapi/comparison"
	"comparehubapi/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (api *API) GetComparison(c *gin.Context) {
	ids, err := api.Comparison.Ids()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	products, err := api.Catalog.ProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":        ids,
		"products":   products,
		"highlights": comparison.DeriveHighlights(products),
	})
}

func (api *API) AddToComparison(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Id < 1 {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	result, err := api.Comparison.Add(req.Id)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (api *API) ToggleComparison(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Id < 1 {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	result, err := api.Comparison.Toggle(req.Id)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (api *API) RemoveFromComparison(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	result, err := api.Comparison.Remove(id)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (api *API) ClearComparison(c *gin.Context) {
	if err := api.Comparison.Clear(); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) ShareComparison(c *gin.Context) {
	ids, err := api.Comparison.Ids()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids": ids,
		"url": "/compare?ids=" + comparison.EncodeIds(ids),
	})
}

func (api *API) ResolveComparison(c *gin.Context) {
	ids := comparison.DecodeIds(c.Query("ids"))

	products, err := api.Catalog.ProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":        ids,
		"products":   products,
		"highlights": comparison.DeriveHighlights(products),
	})
}

func (api *API) ExportComparison(c *gin.Context) {
	ids, err := api.Comparison.Ids()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if len(ids) < comparison.Min {
		sendError(c, http.StatusBadRequest, "not-enough-products")
		return
	}

	products, err := api.Catalog.ProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	handleExcelComparison(c, products)
}

func handleExcelComparison(c *gin.Context, products []models.Product) {
	f := excelize.NewFile()

	sheet := "Comparison"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	lastCol, _ := excelize.ColumnNumberToName(len(products) + 1)
	if err := f.SetColWidth(sheet, "A", lastCol, 30); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	header := make([]interface{}, len(products)+1)
	header[0] = excelize.Cell{StyleID: headerStyle, Value: "Feature"}
	for i, p := range products {
		header[i+1] = excelize.Cell{StyleID: headerStyle, Value: p.Title}
	}

	if err = streamWriter.SetRow("A1", header); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	features := []struct {
		label string
		value func(p models.Product) string
	}{
		{"Brand", func(p models.Product) string {
			if p.Brand == "" {
				return "N/A"
			}
			return p.Brand
		}},
		{"Price", func(p models.Product) string { return fmt.Sprintf("$%s", humanize.Commaf(p.Price)) }},
		{"Discount", func(p models.Product) string { return fmt.Sprintf("%.1f%%", p.DiscountPercentage) }},
		{"Rating", func(p models.Product) string { return fmt.Sprintf("%.1f / 5", p.Rating) }},
		{"Stock", func(p models.Product) string { return fmt.Sprintf("%d units", p.Stock) }},
		{"Category", func(p models.Product) string { return p.Category }},
		{"Warranty", func(p models.Product) string { return p.WarrantyInformation }},
		{"Shipping", func(p models.Product) string { return p.ShippingInformation }},
		{"Return Policy", func(p models.Product) string { return p.ReturnPolicy }},
		{"Dimensions", func(p models.Product) string {
			return fmt.Sprintf("%g x %g x %g", p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Depth)
		}},
		{"Weight", func(p models.Product) string { return fmt.Sprintf("%g kg", p.Weight) }},
		{"Min Order", func(p models.Product) string { return fmt.Sprintf("%d units", p.MinimumOrderQuantity) }},
	}

	for n, feature := range features {
		row := make([]interface{}, len(products)+1)
		row[0] = excelize.Cell{StyleID: headerStyle, Value: feature.label}
		for i, p := range products {
			row[i+1] = excelize.Cell{StyleID: dataStyle, Value: feature.value(p)}
		}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	fileName := fmt.Sprintf("comparison_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
}
