package handlers

import (
	"net/http"

	"bespokedbikes/internal/http/middleware"
	"bespokedbikes/internal/services"

	"github.com/gin-gonic/gin"
)

// SaleInvoice returns the invoice PDF of one sale (inline).
func SaleInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	repos := middleware.Repositories(c)
	svc := services.InvoiceService{
		Sales:     repos.Sales,
		Discounts: repos.Discounts,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateSaleInvoice(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
