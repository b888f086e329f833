package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

type SaleReader interface {
	GetByID(ctx context.Context, id int64) (*models.Sale, error)
}

type DiscountLister interface {
	List(ctx context.Context, params query.Parameters) (paging.Page[*models.Discount], error)
}

// InvoiceService renders a PDF invoice for one sale.
type InvoiceService struct {
	Sales     SaleReader
	Discounts DiscountLister
	RequestID string
	Now       func() time.Time
	Loader    func(ctx context.Context, saleID int64) (saleDocData, error)
}

type saleDocData struct {
	SaleID          int64
	SaleDate        time.Time
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	SalespersonName string
	ProductName     string
	Manufacturer    string
	Style           string
	ListPrice       decimal.Decimal
	Discount        decimal.NullDecimal
	Price           decimal.Decimal
	CommissionPct   int
	Commission      decimal.Decimal
}

// GenerateSaleInvoice returns the PDF bytes and a download file name.
func (s InvoiceService) GenerateSaleInvoice(ctx context.Context, saleID int64) ([]byte, string, error) {
	data, err := s.loadSaleDocData(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate_invoice", fmt.Sprintf("sale_id=%d", saleID))
	return buildSaleInvoicePDF(data, s.now())
}

func (s InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s InvoiceService) loadSaleDocData(ctx context.Context, saleID int64) (saleDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, saleID)
	}

	sale, err := s.Sales.GetByID(ctx, saleID)
	if err != nil {
		return saleDocData{}, err
	}
	if sale == nil {
		return saleDocData{}, domain.NotFoundError{Resource: "sale", ID: saleID}
	}

	out := saleDocData{SaleID: sale.SaleID, SaleDate: s.now()}
	if sale.SaleDate != nil {
		out.SaleDate = *sale.SaleDate
	}
	if c := sale.Customer; c != nil {
		out.CustomerName = utils.NormalizeSpace(c.FirstName + " " + c.LastName)
		out.CustomerAddress = joinNonEmpty(", ", c.Address1, c.Address2, c.City, strings.TrimSpace(c.State+" "+c.PostalCode))
		out.CustomerPhone = c.PhoneNumber
	}
	if sp := sale.Salesperson; sp != nil {
		out.SalespersonName = utils.NormalizeSpace(sp.FirstName + " " + sp.LastName)
	}

	if p := sale.Product; p != nil {
		out.ProductName = p.Name
		out.Manufacturer = p.Manufacturer
		out.Style = p.Style
		out.ListPrice = decimal.NewFromInt(int64(p.SalePrice))
		out.CommissionPct = p.CommissionPercentage

		discount, err := s.activeDiscount(ctx, p.ProductID, out.SaleDate)
		if err != nil {
			return saleDocData{}, err
		}
		out.Discount = discount
		out.Price = utils.DiscountedPrice(p.SalePrice, discount)
		out.Commission = utils.Commission(out.Price, p.CommissionPercentage)
	}

	return out, nil
}

// activeDiscount picks the largest discount on the product whose window
// contains on.
func (s InvoiceService) activeDiscount(ctx context.Context, productID int64, on time.Time) (decimal.NullDecimal, error) {
	if s.Discounts == nil {
		return decimal.NullDecimal{}, nil
	}
	params := query.Parameters{
		Filters: fmt.Sprintf("ProductId == %d", productID),
		Params:  paging.Params{PageNumber: 1, PageSize: paging.MaxPageSize},
	}

	best := decimal.NullDecimal{}
	for {
		page, err := s.Discounts.List(ctx, params)
		if err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("load discounts: %w", err)
		}
		for _, d := range page.Items {
			if !d.DiscountPercentage.Valid || !d.ActiveOn(on) {
				continue
			}
			if !best.Valid || d.DiscountPercentage.Decimal.GreaterThan(best.Decimal) {
				best = d.DiscountPercentage
			}
		}
		if !page.HasNext() {
			return best, nil
		}
		params.PageNumber++
	}
}

func buildSaleInvoicePDF(d saleDocData, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BESPOKED BIKES - INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%06d", d.SaleID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Sale Date  : "+utils.FormatDate(d.SaleDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDateTime(issued))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Bill to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name    : %s", utils.Fallback(d.CustomerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Address : %s", utils.Fallback(d.CustomerAddress, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone   : %s", utils.Fallback(d.CustomerPhone, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("%s by %s (%s)", utils.Fallback(d.ProductName, "-"), utils.Fallback(d.Manufacturer, "-"), utils.Fallback(d.Style, "-"))
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, "List price : "+utils.FormatMoney(d.ListPrice))
	pdf.Ln(6)
	if d.Discount.Valid {
		pdf.Cell(0, 6, "Discount   : "+utils.FormatPercent(d.Discount.Decimal))
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(d.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Salesperson: %s. Commission %d%%: %s.",
		utils.Fallback(d.SalespersonName, "-"), d.CommissionPct, utils.FormatMoney(d.Commission)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", d.SaleID, safeFilenamePart(d.CustomerName))
	return buf.Bytes(), filename, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
