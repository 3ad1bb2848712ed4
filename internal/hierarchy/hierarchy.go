// Package hierarchy resolves which organization identities an account writes and reads
// under when an organization operates through one primary account and several secondaries.
//
// Accounts are loaded into a closed two-case variant so the rest of the code never
// branches on nullable hierarchy columns. None of the functions here fail on an
// inconsistent hierarchy; they degrade to the account's own identity instead.
package hierarchy

import (
	"github.com/google/uuid"
)

// Account is either a Primary or a Secondary.
type Account interface {
	// AccountID is the id of the account itself.
	AccountID() uuid.UUID
	sealed()
}

// Primary owns organization data directly.
type Primary struct {
	ID uuid.UUID
}

// Secondary acts on behalf of its primary and writes under the primary's identity.
type Secondary struct {
	ID        uuid.UUID
	PrimaryID uuid.UUID
}

func (p Primary) AccountID() uuid.UUID   { return p.ID }
func (s Secondary) AccountID() uuid.UUID { return s.ID }

func (Primary) sealed()   {}
func (Secondary) sealed() {}

// SecondaryLookup returns the ids of all accounts whose primary is primaryID.
type SecondaryLookup func(primaryID uuid.UUID) ([]uuid.UUID, error)

// Resolve builds the variant from stored hierarchy columns. consistent is false when the
// row is neither primary nor points at a primary (or points at itself); such rows are
// treated as a standalone Primary.
func Resolve(id uuid.UUID, isPrimary bool, primaryID *uuid.UUID) (account Account, consistent bool) {
	if isPrimary {
		return Primary{ID: id}, primaryID == nil
	}
	if primaryID == nil || *primaryID == uuid.Nil || *primaryID == id {
		return Primary{ID: id}, false
	}
	return Secondary{ID: id, PrimaryID: *primaryID}, true
}

// EffectiveIdentity is the organization id new data is written under.
func EffectiveIdentity(a Account) uuid.UUID {
	switch acc := a.(type) {
	case Primary:
		return acc.ID
	case Secondary:
		return acc.PrimaryID
	}
	return a.AccountID()
}

// VisibleIdentities is the set of organization ids whose data the account may read.
// A primary sees itself and all its secondaries; a secondary sees only its primary.
// The account's own identity, or its primary's, is always first.
func VisibleIdentities(a Account, lookup SecondaryLookup) ([]uuid.UUID, error) {
	switch acc := a.(type) {
	case Primary:
		ids := []uuid.UUID{acc.ID}
		if lookup == nil {
			return ids, nil
		}
		secondaries, err := lookup(acc.ID)
		if err != nil {
			return nil, err
		}
		seen := map[uuid.UUID]struct{}{acc.ID: {}}
		for _, id := range secondaries {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		return ids, nil
	case Secondary:
		return []uuid.UUID{acc.PrimaryID}, nil
	}
	return []uuid.UUID{a.AccountID()}, nil
}

// CanManage reports whether the account may manage data owned by target.
// A primary manages only its own data, not its secondaries'. A secondary manages its
// primary's data.
func CanManage(a Account, target uuid.UUID) bool {
	switch acc := a.(type) {
	case Primary:
		return acc.ID == target
	case Secondary:
		return acc.PrimaryID == target
	}
	return false
}
