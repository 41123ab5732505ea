package server

import (
	"context"

	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/common"
)

func (s *InvoiceService) ExportInvoices(ctx context.Context, _ *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	xlsx, err := s.exporter.ExportInvoicesXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
