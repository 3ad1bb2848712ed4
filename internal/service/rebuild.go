package service

import (
	"context"
	"fmt"

	"campus-placement-backend/internal/logger"
	"campus-placement-backend/internal/repository"
)

// RebuildService replays stored contact records through the synchronizer
type RebuildService struct {
	contacts      repository.ContactRepositoryInterface
	relationships RelationshipServiceInterface
}

// NewRebuildService creates a new rebuild service
func NewRebuildService(contacts repository.ContactRepositoryInterface, relationships RelationshipServiceInterface) *RebuildService {
	return &RebuildService{
		contacts:      contacts,
		relationships: relationships,
	}
}

// RebuildResult summarizes one replay
type RebuildResult struct {
	Events        int `json:"events"`
	Relationships int `json:"relationships"`
}

// Rebuild replays every stored contact record oldest first, each at its original time.
// Replaying onto an existing ledger leaves it unchanged because each upsert is idempotent.
func (s *RebuildService) Rebuild(ctx context.Context) (*RebuildResult, error) {
	events, err := s.contacts.ListContactEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to load contact events: %w", err)
	}

	pairs := make(map[[2]string]struct{})
	for i := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		event := events[i]
		_, err := s.relationships.Synchronize(ctx, &SyncRequest{
			OrganizationID:   event.OrganizationID,
			OrganizationKind: event.OrganizationKind,
			CandidateID:      event.CandidateID,
			Kind:             event.Kind,
			Refs:             event.Refs,
			At:               event.At,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to replay %s event for candidate %s: %w", event.Kind, event.CandidateID, err)
		}
		ledgerRebuildEventsTotal.Inc()
		pairs[[2]string{event.OrganizationID.String(), event.CandidateID.String()}] = struct{}{}
	}

	result := &RebuildResult{Events: len(events), Relationships: len(pairs)}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"events":        result.Events,
		"relationships": result.Relationships,
	}).Info("rebuilt talent relationship ledger")
	return result, nil
}
