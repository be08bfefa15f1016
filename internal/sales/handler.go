// Package sales exposes the admin sales analytics and the monthly report
// exports built from the sales ledger.
package sales

import (
	"fmt"
	"time"

	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/admin/sales/analytics
func AnalyticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		analytics, err := ledger.Sales.Analytics()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}

		recent, err := ledger.Sales.Recent(10)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}

		return c.JSON(fiber.Map{
			"analytics":     analytics,
			"recent_orders": recent,
		})
	}
}

func monthParams(c *fiber.Ctx) (int, time.Month, error) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

// GET /api/admin/sales/monthly-pdf?year=2025&month=12
// One table row per sold line item, newest order first.
func MonthlyPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return err
		}

		records, err := ledger.Sales.ForMonth(year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}

		totalRevenue := 0.0
		for _, s := range records {
			totalRevenue += s.TotalAmount
		}

		pdf := report.NewDocument(fmt.Sprintf("Monthly Sales Report %04d-%02d", year, month))
		report.KeyValue(pdf, "Total Orders:", fmt.Sprint(len(records)))
		report.KeyValue(pdf, "Total Revenue:", report.Money(totalRevenue))
		pdf.Ln(4)

		var rows [][]string
		for i := len(records) - 1; i >= 0; i-- {
			s := records[i]
			for _, it := range s.Items {
				rows = append(rows, []string{
					s.OrderID,
					s.Username,
					s.OrderDateUTC.Format("2006-01-02"),
					it.Name,
					fmt.Sprint(it.Quantity),
					report.Money(it.LineTotal()),
				})
			}
		}
		report.Table(pdf,
			[]float64{42, 28, 25, 50, 15, 30},
			[]string{"Invoice", "User", "Date", "Item", "Qty", "Line"},
			rows)
		report.Footer(pdf, time.Now())

		data, err := report.Bytes(pdf)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate report")
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="SalesReport-%04d-%02d.pdf"`, year, month))
		return c.Send(data)
	}
}

// GET /api/admin/sales/monthly-xlsx?year=2025&month=12
func MonthlyXLSXHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return err
		}

		records, err := ledger.Sales.ForMonth(year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Sales"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Invoice", "User", "Date (UTC)", "Item", "Unit", "Qty", "Unit Price", "Line Total"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		row := 2
		totalRevenue := 0.0
		for i := len(records) - 1; i >= 0; i-- {
			s := records[i]
			totalRevenue += s.TotalAmount
			for _, it := range s.Items {
				values := []interface{}{
					s.OrderID,
					s.Username,
					s.OrderDateUTC.Format("2006-01-02 15:04"),
					it.Name,
					it.UnitLabel,
					it.Quantity,
					it.Price,
					it.LineTotal(),
				}
				for col, v := range values {
					cell, _ := excelize.CoordinatesToCellName(col+1, row)
					f.SetCellValue(sheet, cell, v)
				}
				row++
			}
		}

		totalCell, _ := excelize.CoordinatesToCellName(7, row+1)
		f.SetCellValue(sheet, totalCell, "Total Revenue")
		valueCell, _ := excelize.CoordinatesToCellName(8, row+1)
		f.SetCellValue(sheet, valueCell, totalRevenue)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate report")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="SalesReport-%04d-%02d.xlsx"`, year, month))
		return c.Send(buf.Bytes())
	}
}
