// internal/handlers/export.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
	"github.com/mtarnawa/restock-be/internal/handlers/middleware"
)

// reasonLabels translates ranking reasons for human readers. Wire and
// storage formats keep the raw tags.
var reasonLabels = map[domain.Reason]string{
	domain.ReasonCheapest:       "Cheapest option",
	domain.ReasonFastestUrgent:  "Fastest (urgent need)",
	domain.ReasonOnlyOption:     "Only option",
	domain.ReasonManualOverride: "Manual override",
}

// ReasonLabel returns display text for a ranking reason
func ReasonLabel(r domain.Reason) string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return string(r)
}

// ExportHandler handles plan export operations
type ExportHandler struct {
	service ports.PlannerService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.PlannerService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/plan/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	plan, err := h.service.Plan(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build plan for export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to build shopping plan")
		return
	}

	excelData, err := h.generateExcelFile(plan)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("shopping_plan_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("stops", len(plan.Groups)),
		slog.String("filename", filename))
}

// generateExcelFile creates an Excel workbook from a route plan
func (h *ExportHandler) generateExcelFile(plan *domain.RoutePlan) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Shopping Plan")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Supplier", "Item", "Unit", "Quantity", "Unit Price",
		"Product Cost", "Logistics", "Total", "Lead Time (days)", "Reason",
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, group := range plan.Groups {
		for _, option := range group.Items {
			row := sheet.AddRow()
			row.AddCell().Value = group.SupplierName
			row.AddCell().Value = option.Item.Name
			row.AddCell().Value = option.Item.Unit
			row.AddCell().Value = option.Quantity.String()
			row.AddCell().Value = option.UnitPrice.StringFixed(2)
			row.AddCell().Value = option.Analysis.Winner.ProductCost.StringFixed(2)
			row.AddCell().Value = option.Analysis.Winner.LogisticsCost.StringFixed(2)
			row.AddCell().Value = option.Analysis.Winner.TotalCost.StringFixed(2)
			row.AddCell().Value = strconv.Itoa(option.Analysis.Winner.LeadTimeDays)
			row.AddCell().Value = ReasonLabel(option.Reason)
		}

		totalRow := sheet.AddRow()
		totalRow.AddCell().Value = group.SupplierName + " total"
		for i := 0; i < 4; i++ {
			totalRow.AddCell()
		}
		cell := totalRow.AddCell()
		cell.Value = group.TotalCost.StringFixed(2)
		cell.GetStyle().Font.Bold = true
	}

	if len(plan.Unassigned) > 0 {
		unassignedSheet, err := file.AddSheet("Unassigned")
		if err != nil {
			return nil, fmt.Errorf("failed to add worksheet: %w", err)
		}

		uHeaderRow := unassignedSheet.AddRow()
		for _, header := range []string{"Item", "Unit", "To Buy", "Days Left", "Urgent"} {
			cell := uHeaderRow.AddCell()
			cell.Value = header
			cell.GetStyle().Font.Bold = true
		}

		for _, item := range plan.Unassigned {
			row := unassignedSheet.AddRow()
			row.AddCell().Value = item.Name
			row.AddCell().Value = item.Unit
			row.AddCell().Value = item.ToBuy.String()
			row.AddCell().Value = formatDaysLeft(item.DaysLeft)
			if item.Urgent {
				row.AddCell().Value = "Yes"
			} else {
				row.AddCell().Value = "No"
			}
		}
	}

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().Value = "Estimated total"
	for i := 0; i < 4; i++ {
		summaryRow.AddCell()
	}
	cell := summaryRow.AddCell()
	cell.Value = plan.Summary.EstimatedCost.StringFixed(2)
	cell.GetStyle().Font.Bold = true

	for i := 0; i < len(headers); i++ {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func formatDaysLeft(d domain.Days) string {
	if math.IsInf(float64(d), 1) {
		return "no usage"
	}
	return strconv.FormatFloat(float64(d), 'f', 1, 64)
}

func (h *ExportHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
