package repository

import (
	"fmt"
	"strings"

	"campus-placement-backend/internal/database"
	"campus-placement-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const relationshipEntity = "talent relationship"

// RelationshipRepository handles database operations for talent relationships
type RelationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new talent relationship repository
func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *RelationshipRepository) WithTx(tx *gorm.DB) RelationshipRepositoryInterface {
	return &RelationshipRepository{db: tx}
}

// Upsert creates the record for the pair or merges the synchronization into the existing one
// in a single statement, then returns the stored row.
func (r *RelationshipRepository) Upsert(upsert *models.RelationshipUpsert) (*models.TalentRelationship, error) {
	if err := r.insertOrMerge(upsert).Error; err != nil {
		return nil, database.ClassifyError(relationshipEntity, err)
	}

	stored, err := r.GetByPair(upsert.OrganizationID, upsert.CandidateID)
	if err != nil {
		return nil, database.ClassifyError(relationshipEntity, err)
	}
	return stored, nil
}

func (r *RelationshipRepository) insertOrMerge(upsert *models.RelationshipUpsert) *gorm.DB {
	status := upsert.ImpliedStatus
	if status == "" {
		status = models.RelationshipStatusNoneYet
	}

	record := &models.TalentRelationship{
		OrganizationID:   upsert.OrganizationID,
		OrganizationKind: upsert.OrganizationKind,
		CandidateID:      upsert.CandidateID,
		Status:           status,
		LastContactKind:  upsert.Kind,
		ResumeID:         upsert.Refs.ResumeID,
		ApplicationID:    upsert.Refs.ApplicationID,
		InterviewID:      upsert.Refs.InterviewID,
		OfferID:          upsert.Refs.OfferID,
		FirstContactTime: upsert.At,
		LastContactTime:  upsert.At,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "candidate_id"}},
		DoUpdates: clause.Assignments(relationshipAssignments(upsert)),
	}).Create(record)
}

// relationshipAssignments builds the DO UPDATE SET list. first_contact_time is never assigned.
func relationshipAssignments(upsert *models.RelationshipUpsert) map[string]interface{} {
	table := models.TalentRelationship{}.TableName()
	assignments := map[string]interface{}{
		"last_contact_time": gorm.Expr(fmt.Sprintf("GREATEST(%s.last_contact_time, EXCLUDED.last_contact_time)", table)),
		"last_contact_kind": gorm.Expr(fmt.Sprintf(
			"CASE WHEN EXCLUDED.last_contact_time >= %[1]s.last_contact_time THEN EXCLUDED.last_contact_kind ELSE %[1]s.last_contact_kind END", table)),
		"updated_at": gorm.Expr("EXCLUDED.updated_at"),
	}

	if upsert.Refs.ResumeID != nil {
		assignments["resume_id"] = gorm.Expr("EXCLUDED.resume_id")
	}
	if upsert.Refs.ApplicationID != nil {
		assignments["application_id"] = gorm.Expr("EXCLUDED.application_id")
	}
	if upsert.Refs.InterviewID != nil {
		assignments["interview_id"] = gorm.Expr("EXCLUDED.interview_id")
	}
	if upsert.Refs.OfferID != nil {
		assignments["offer_id"] = gorm.Expr("EXCLUDED.offer_id")
	}

	if upsert.ImpliedStatus != "" {
		if upsert.Monotonic {
			assignments["status"] = gorm.Expr(monotonicStatusExpr(table))
		} else {
			assignments["status"] = gorm.Expr("EXCLUDED.status")
		}
	}
	return assignments
}

// monotonicStatusExpr keeps whichever of the stored and incoming status ranks deeper.
func monotonicStatusExpr(table string) string {
	quoted := make([]string, len(models.RelationshipStatusOrder))
	for i, status := range models.RelationshipStatusOrder {
		quoted[i] = "'" + string(status) + "'"
	}
	order := "ARRAY[" + strings.Join(quoted, ",") + "]::text[]"
	return fmt.Sprintf(
		"CASE WHEN array_position(%[1]s, EXCLUDED.status::text) > array_position(%[1]s, %[2]s.status::text) THEN EXCLUDED.status ELSE %[2]s.status END",
		order, table)
}

// GetByPair retrieves the record of one (organization, candidate) pair
func (r *RelationshipRepository) GetByPair(organizationID, candidateID uuid.UUID) (*models.TalentRelationship, error) {
	var relationship models.TalentRelationship
	err := r.db.Where("organization_id = ? AND candidate_id = ?", organizationID, candidateID).
		First(&relationship).Error
	if err != nil {
		return nil, err
	}
	return &relationship, nil
}

// GetByCandidate retrieves the records any of the given organizations hold for a candidate
func (r *RelationshipRepository) GetByCandidate(organizationIDs []uuid.UUID, candidateID uuid.UUID) ([]models.TalentRelationship, error) {
	var relationships []models.TalentRelationship
	err := r.db.Preload("Candidate").
		Where("organization_id IN ? AND candidate_id = ?", organizationIDs, candidateID).
		Order("last_contact_time DESC").
		Find(&relationships).Error
	return relationships, err
}

// ListByOrganizations retrieves the talent pool of the given organizations with pagination
func (r *RelationshipRepository) ListByOrganizations(organizationIDs []uuid.UUID, filter RelationshipFilter, limit, offset int) ([]models.TalentRelationship, int64, error) {
	var relationships []models.TalentRelationship
	var total int64

	query := r.db.Model(&models.TalentRelationship{}).Where("organization_id IN ?", organizationIDs)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrganizationKind != "" {
		query = query.Where("organization_kind = ?", filter.OrganizationKind)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Candidate").
		Order("last_contact_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&relationships).Error

	return relationships, total, err
}
