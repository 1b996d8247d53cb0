package reports

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetTransactionsCSV godoc
//
//	@Summary		Export the escrow ledger as CSV
//	@Description	Full transaction history joined with job titles and wallet owners, for accounting.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Success		200	{string}	string			"CSV payload"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/transactions [get]
func (h *ReportHandler) GetTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.TransactionReport(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	cw := csv.NewWriter(w)
	header := []string{"id", "job", "type", "status", "amount", "from", "to", "created_at", "released_at"}
	if err := cw.Write(header); err != nil {
		zap.L().Error("failed to write report header", zap.Error(err))
		return
	}
	for i := range rows {
		row := &rows[i]
		releasedAt := ""
		if row.ReleasedAt != nil {
			releasedAt = row.ReleasedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.Itoa(row.ID),
			row.JobTitle,
			row.Type,
			row.Status,
			row.Amount.StringFixed(2),
			row.FromOwner,
			row.ToOwner,
			row.CreatedAt.Format(time.RFC3339),
			releasedAt,
		}
		if err := cw.Write(record); err != nil {
			zap.L().Error("failed to write report row", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		zap.L().Error("failed to flush report", zap.Error(err))
	}
}
