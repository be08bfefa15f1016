package shop

import (
	"fmt"
	"strconv"

	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

// GET /api/cart/invoice/:orderId
func InvoicePDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID := c.Params("orderId")

		sale, found, err := ledger.Sales.Find(orderID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		pdf := report.NewDocument("Invoice")
		report.KeyValue(pdf, "Order ID:", sale.OrderID)
		report.KeyValue(pdf, "Customer:", sale.Username)
		report.KeyValue(pdf, "Date:", sale.OrderDateUTC.Format("2006-01-02 15:04 UTC"))
		pdf.Ln(4)

		rows := make([][]string, 0, len(sale.Items))
		for _, it := range sale.Items {
			rows = append(rows, []string{
				fmt.Sprintf("%s (%s)", it.Name, it.UnitLabel),
				strconv.Itoa(it.Quantity),
				report.Money(it.Price),
				report.Money(it.LineTotal()),
			})
		}
		report.Table(pdf,
			[]float64{90, 25, 35, 40},
			[]string{"Product", "Qty", "Unit Price", "Total"},
			rows)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(150, 8, "Grand Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, report.Money(sale.TotalAmount), "1", 1, "R", false, 0, "")
		report.Footer(pdf, sale.OrderDateUTC)

		data, err := report.Bytes(pdf)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate invoice")
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, sale.OrderID))
		return c.Send(data)
	}
}
