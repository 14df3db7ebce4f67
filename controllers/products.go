package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"comparehubapi/catalog"
	"comparehubapi/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var mapSortBy = map[string]bool{
	models.SortTitleAsc:     true,
	models.SortPriceAsc:     true,
	models.SortPriceDesc:    true,
	models.SortRatingDesc:   true,
	models.SortDiscountDesc: true,
}

func (api *API) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 20
	}

	sortBy := c.Query("sortBy")
	if !mapSortBy[sortBy] {
		sortBy = models.SortTitleAsc
	}

	minRating := parseOptionalFloat(c.Query("minRating"))

	params := models.QueryParams{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MinPrice: parseOptionalFloat(c.Query("minPrice")),
		MaxPrice: parseOptionalFloat(c.Query("maxPrice")),
		SortBy:   sortBy,
	}

	if minRating != nil {
		params.MinRating = *minRating
	}

	asExcel, _ := strconv.ParseBool(c.Query("export_as_excel"))

	products, err := api.Catalog.Products(c.Request.Context())
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	matched := catalog.SortProducts(catalog.FilterProducts(products, params), params.SortBy)

	// the export covers every match, not just the requested page
	if asExcel {
		handleExcelProducts(c, matched)
		return
	}

	pageItems, pagination := catalog.Paginate(matched, page, limit)

	c.JSON(http.StatusOK, models.ProductList{
		Products:   pageItems,
		Pagination: pagination,
	})
}

func (api *API) GetProductMetadata(c *gin.Context) {
	metadata, err := api.Catalog.Metadata(c.Request.Context())
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, metadata)
}

func (api *API) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	product, err := api.Catalog.ProductByID(c.Request.Context(), id)
	if err != nil {
		if err == catalog.ErrNotFound {
			sendError(c, http.StatusNotFound, "product-not-found")
			return
		}
		log.Println(err)
		sendError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

func handleExcelProducts(c *gin.Context, products []models.Product) {
	if len(products) == 0 {
		sendError(c, http.StatusNotFound, "products-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "F", 30)
	if err != nil {
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

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "Title"},
		excelize.Cell{StyleID: headerStyle, Value: "Brand"},
		excelize.Cell{StyleID: headerStyle, Value: "Category"},
		excelize.Cell{StyleID: headerStyle, Value: "Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Rating"},
		excelize.Cell{StyleID: headerStyle, Value: "Stock"}}); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	for n, product := range products {
		row := make([]interface{}, 6)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: product.Title}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: product.Brand}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: product.Category}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: fmt.Sprintf("$%s", humanize.Commaf(product.Price))}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: product.Rating}
		row[5] = excelize.Cell{StyleID: dataStyle, Value: product.Stock}

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

	fileName := fmt.Sprintf("products_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
}
