package order

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Uploader is the slice of the object-storage client the export
// needs. *storage.R2Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type ExportService struct {
	repo     Repository
	uploader Uploader
	logger   *zap.Logger
}

func NewExportService(repo Repository, uploader Uploader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{repo: repo, uploader: uploader, logger: logger}
}

// ExportCSV writes every order to a CSV object and returns its
// public URL. Requires object storage to be configured.
func (s *ExportService) ExportCSV(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", errors.New("object storage not configured")
	}

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{
		"Order_ID", "Customer_ID", "Customer_Name", "Order_Price", "Order_Status", "Order_Created_DateTime",
	}); err != nil {
		return "", err
	}

	for _, o := range orders {
		record := []string{
			o.ID,
			o.CustomerID,
			o.CustomerName,
			strconv.FormatFloat(o.Price, 'f', 2, 64),
			o.Status,
			o.CreatedAt.Format("02/01/2006 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/orders-%s.csv", time.Now().Format("20060102-150405"))

	url, err := s.uploader.Upload(ctx, key, bytes.NewReader(buf.Bytes()), "text/csv")
	if err != nil {
		return "", err
	}

	s.logger.Info("orders exported",
		zap.Int("orders", len(orders)),
		zap.String("key", key),
	)
	return url, nil
}
