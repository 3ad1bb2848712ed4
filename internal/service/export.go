package service

import (
	"context"
	"fmt"
	"time"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// PoolSheetName is the worksheet ExportPool writes to
const PoolSheetName = "Talent Pool"

var poolSheetHeader = []interface{}{
	"Organization ID", "Organization Kind", "Candidate ID", "Candidate Name", "Candidate Email",
	"Status", "Last Contact Kind", "First Contact", "Last Contact",
}

// ExportPool renders the caller's whole talent pool as an xlsx workbook
func (s *RelationshipService) ExportPool(ctx context.Context, caller *auth.Caller, filter PoolFilter) ([]byte, error) {
	repoFilter, err := filter.toRepository()
	if err != nil {
		return nil, err
	}
	visible, err := s.visibleFor(ctx, caller)
	if err != nil {
		return nil, err
	}

	relationships, _, err := s.repo.ListByOrganizations(visible, repoFilter, -1, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list talent pool: %w", err)
	}
	return renderPoolWorkbook(relationships)
}

func renderPoolWorkbook(relationships []models.TalentRelationship) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PoolSheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}
	if err := f.SetSheetRow(PoolSheetName, "A1", &poolSheetHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i := range relationships {
		r := &relationships[i]
		var name, email string
		if r.Candidate != nil {
			name, email = r.Candidate.Name, r.Candidate.Email
		}
		row := []interface{}{
			r.OrganizationID.String(), string(r.OrganizationKind), r.CandidateID.String(), name, email,
			string(r.Status), string(r.LastContactKind),
			r.FirstContactTime.UTC().Format(time.RFC3339), r.LastContactTime.UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(PoolSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFileName is the attachment name for a pool export taken by the given account
func ExportFileName(identity uuid.UUID, at time.Time) string {
	return fmt.Sprintf("talent-pool-%s-%s.xlsx", identity.String()[:8], at.UTC().Format("20060102"))
}
