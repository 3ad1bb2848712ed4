package hierarchy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	primary Primary
	s1      Secondary
	s2      Secondary
	lookup  SecondaryLookup
	calls   *int
}

func newFixture() fixture {
	p := Primary{ID: uuid.New()}
	s1 := Secondary{ID: uuid.New(), PrimaryID: p.ID}
	s2 := Secondary{ID: uuid.New(), PrimaryID: p.ID}
	calls := 0
	return fixture{
		primary: p,
		s1:      s1,
		s2:      s2,
		calls:   &calls,
		lookup: func(primaryID uuid.UUID) ([]uuid.UUID, error) {
			calls++
			if primaryID == p.ID {
				return []uuid.UUID{s1.ID, s2.ID}, nil
			}
			return nil, nil
		},
	}
}

func TestResolve(t *testing.T) {
	id := uuid.New()
	primaryID := uuid.New()

	tests := []struct {
		name           string
		isPrimary      bool
		primaryID      *uuid.UUID
		wantAccount    Account
		wantConsistent bool
	}{
		{name: "primary", isPrimary: true, wantAccount: Primary{ID: id}, wantConsistent: true},
		{name: "secondary", primaryID: &primaryID, wantAccount: Secondary{ID: id, PrimaryID: primaryID}, wantConsistent: true},
		{name: "neither primary nor referenced", wantAccount: Primary{ID: id}, wantConsistent: false},
		{name: "secondary referencing itself", primaryID: &id, wantAccount: Primary{ID: id}, wantConsistent: false},
		{name: "nil uuid reference", primaryID: &uuid.Nil, wantAccount: Primary{ID: id}, wantConsistent: false},
		{name: "primary carrying a reference", isPrimary: true, primaryID: &primaryID, wantAccount: Primary{ID: id}, wantConsistent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, consistent := Resolve(id, tt.isPrimary, tt.primaryID)
			assert.Equal(t, tt.wantAccount, account)
			assert.Equal(t, tt.wantConsistent, consistent)
			assert.Equal(t, id, account.AccountID())
		})
	}
}

func TestEffectiveIdentity(t *testing.T) {
	f := newFixture()

	assert.Equal(t, f.primary.ID, EffectiveIdentity(f.primary))
	assert.Equal(t, f.primary.ID, EffectiveIdentity(f.s1), "secondary writes as its primary")

	// Inconsistent row falls back to its own id without error.
	orphan := uuid.New()
	account, consistent := Resolve(orphan, false, nil)
	assert.False(t, consistent)
	assert.Equal(t, orphan, EffectiveIdentity(account))
}

func TestVisibleIdentities(t *testing.T) {
	t.Run("primary sees itself and all secondaries", func(t *testing.T) {
		f := newFixture()
		ids, err := VisibleIdentities(f.primary, f.lookup)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{f.primary.ID, f.s1.ID, f.s2.ID}, ids)
		assert.Equal(t, 1, *f.calls, "exactly one secondaries lookup")
	})

	t.Run("secondary sees only its primary", func(t *testing.T) {
		f := newFixture()
		ids, err := VisibleIdentities(f.s1, f.lookup)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{f.primary.ID}, ids)
		assert.NotContains(t, ids, f.s2.ID)
		assert.Equal(t, 0, *f.calls)
	})

	t.Run("primary without secondaries", func(t *testing.T) {
		p := Primary{ID: uuid.New()}
		ids, err := VisibleIdentities(p, func(uuid.UUID) ([]uuid.UUID, error) { return nil, nil })
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p.ID}, ids)
	})

	t.Run("nil lookup", func(t *testing.T) {
		p := Primary{ID: uuid.New()}
		ids, err := VisibleIdentities(p, nil)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p.ID}, ids)
	})

	t.Run("duplicates from lookup are dropped", func(t *testing.T) {
		p := Primary{ID: uuid.New()}
		s := uuid.New()
		ids, err := VisibleIdentities(p, func(uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{s, p.ID, s}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p.ID, s}, ids)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		p := Primary{ID: uuid.New()}
		boom := errors.New("connection refused")
		ids, err := VisibleIdentities(p, func(uuid.UUID) ([]uuid.UUID, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, ids)
	})
}

func TestCanManage(t *testing.T) {
	f := newFixture()

	assert.True(t, CanManage(f.primary, f.primary.ID))
	assert.False(t, CanManage(f.primary, f.s1.ID), "primary cannot manage a secondary's data")
	assert.True(t, CanManage(f.s1, f.primary.ID), "secondary manages its primary's data")
	assert.False(t, CanManage(f.s1, f.s1.ID))
	assert.False(t, CanManage(f.s1, f.s2.ID))
	assert.False(t, CanManage(f.primary, uuid.New()))
}
