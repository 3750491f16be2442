package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/smith-legal/staff-portal/internal/repositories"
)

// ExportFilename is the fixed download name for the staff report.
const ExportFilename = "users_report.xlsx"

// ExportContentType is the MIME type of the generated workbook.
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const exportSheet = "Users"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

// NewExportService creates the document export service.
func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// UsersWorkbook renders every profile into a workbook with one row per staff
// member: full name, date of birth, province, gender and facilitator status.
func (s *exportService) UsersWorkbook(ctx context.Context) ([]byte, error) {
	profiles, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for export: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}

	headers := []string{"Name", "Date of Birth", "Province", "Gender", "Facilitator"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, p := range profiles {
		row := newUserResponse(p)
		values := []interface{}{
			row.FullName,
			row.DateOfBirth,
			row.Province,
			row.Gender,
			yesNo(row.Facilitator),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build data cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("Users workbook generated", "rows", len(profiles))

	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
