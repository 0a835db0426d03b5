//go:build integration

package uow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/infra/readstore"
	"loyalty-wallet/internal/infra/uow"
	"loyalty-wallet/internal/testutil/dbtest"
	"loyalty-wallet/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const passTypeID = "pass.com.example.loyalty"

type PostgresUoWTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  shared.UnitOfWork
	ctx  context.Context
}

func TestPostgresUoWSuite(t *testing.T) {
	suite.Run(t, new(PostgresUoWTestSuite))
}

func (s *PostgresUoWTestSuite) SetupSuite() {
	s.pool = dbtest.NewPool(s.T())
	s.uow = uow.NewPostgresUoW(s.pool)
	s.ctx = context.Background()
}

func (s *PostgresUoWTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE passes CASCADE")
	s.Require().NoError(err)
}

func (s *PostgresUoWTestSuite) issue(userID string, snap card.Snapshot) *pass.Pass {
	p, err := pass.NewPass(userID, passTypeID, snap, time.Now().UTC())
	s.Require().NoError(err)

	var stored *pass.Pass
	err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, _, err = tx.Passes().Create(ctx, p)
		return err
	})
	s.Require().NoError(err)
	return stored
}

func (s *PostgresUoWTestSuite) register(p *pass.Pass, deviceID, token string) bool {
	push, err := device.ParsePushToken([]byte(token))
	s.Require().NoError(err)
	reg, err := device.NewRegistration(p.ID(), deviceID, push, time.Now().UTC())
	s.Require().NoError(err)

	var inserted bool
	err = s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err = tx.Registrations().Upsert(ctx, reg)
		return err
	})
	s.Require().NoError(err)
	return inserted
}

func (s *PostgresUoWTestSuite) appendUpdate(p *pass.Pass, at time.Time) {
	err := s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Updates().Append(ctx, device.NewPassUpdate(p.ID(), map[string]any{"reason": "test"}, at))
	})
	s.Require().NoError(err)
}

func (s *PostgresUoWTestSuite) TestPassCreateKeepsStoredRow() {
	first := s.issue("u1", card.Snapshot{CardType: "stamp", StampCount: 6, RewardsCollected: 1})

	again, err := pass.NewPass("u1", passTypeID, card.Snapshot{CardType: "points", PointsBalance: 40}, time.Now().UTC())
	s.Require().NoError(err)

	var (
		stored  *pass.Pass
		created bool
	)
	err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, created, err = tx.Passes().Create(ctx, again)
		return err
	})
	s.Require().NoError(err)

	s.False(created)
	s.Equal(first.ID(), stored.ID())
	s.Equal(card.TypeStamp, stored.CardType())
	s.Equal(6, stored.Snapshot().StampCount)
	s.Equal(1, stored.Snapshot().RewardsCollected)
}

func (s *PostgresUoWTestSuite) TestRegistrationUpsert() {
	p := s.issue("u2", card.Snapshot{CardType: "stamp"})

	s.True(s.register(p, "device-1", "token-a"), "first registration inserts")
	s.False(s.register(p, "device-1", "token-b"), "second registration updates")
	s.True(s.register(p, "device-2", "token-b"))

	var count int
	s.Require().NoError(s.pool.QueryRow(s.ctx,
		"SELECT COUNT(*) FROM device_registrations WHERE pass_id = $1", p.ID()).Scan(&count))
	s.Equal(2, count)

	var tokens []string
	err := s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		tokens, err = tx.Registrations().PushTokens(ctx, p.ID())
		return err
	})
	s.Require().NoError(err)
	s.Equal([]string{"token-b"}, tokens)
}

func (s *PostgresUoWTestSuite) TestRegistrationDelete() {
	p := s.issue("u3", card.Snapshot{})
	s.register(p, "device-1", "token-a")

	var deleted, again bool
	err := s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if deleted, err = tx.Registrations().Delete(ctx, p.ID(), "device-1"); err != nil {
			return err
		}
		again, err = tx.Registrations().Delete(ctx, p.ID(), "device-1")
		return err
	})
	s.Require().NoError(err)
	s.True(deleted)
	s.False(again)
}

func (s *PostgresUoWTestSuite) TestWithinRollsBackOnError() {
	p := s.issue("u4", card.Snapshot{StampCount: 2})
	boom := errors.New("boom")

	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Passes().FindBySerialForUpdate(ctx, p.SerialNumber())
		if err != nil {
			return err
		}
		next := locked.WithSnapshot(locked.Snapshot().WithStamps(3), time.Now().UTC())
		if err := tx.Passes().UpdateSnapshot(ctx, next); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	var reloaded *pass.Pass
	err = s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		reloaded, err = tx.Passes().FindBySerial(ctx, p.SerialNumber())
		return err
	})
	s.Require().NoError(err)
	s.Equal(2, reloaded.Snapshot().StampCount)
}

func (s *PostgresUoWTestSuite) TestFindMissingPass() {
	err := s.uow.WithDB(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Passes().FindBySerial(ctx, "COFFEEnobody")
		return err
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *PostgresUoWTestSuite) TestUpdatedSerials() {
	store := readstore.NewPassReadStore(s.pool)
	base := time.Now().UTC().Truncate(time.Millisecond).Add(-time.Minute)

	p1 := s.issue("u5", card.Snapshot{})
	p2 := s.issue("u6", card.Snapshot{})
	p3 := s.issue("u7", card.Snapshot{})
	s.register(p1, "device-1", "token-a")
	s.register(p2, "device-1", "token-a")
	s.register(p3, "device-2", "token-c")

	// several updates for one pass must still list it once
	s.appendUpdate(p1, base.Add(1*time.Second))
	s.appendUpdate(p1, base.Add(2*time.Second))
	s.appendUpdate(p2, base.Add(3*time.Second+250*time.Microsecond))
	s.appendUpdate(p3, base.Add(4*time.Second))

	s.Run("all updates since zero", func() {
		got, err := store.UpdatedSerials(s.ctx, "device-1", passTypeID, time.Time{})
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal("COFFEEu5", got[0].SerialNumber)
		s.Equal("COFFEEu6", got[1].SerialNumber)
	})

	s.Run("tag of the latest update excludes it", func() {
		latest := device.NewUpdateTag(base.Add(3*time.Second + 250*time.Microsecond))
		got, err := store.UpdatedSerials(s.ctx, "device-1", passTypeID, latest.Time())
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("only newer passes", func() {
		got, err := store.UpdatedSerials(s.ctx, "device-1", passTypeID, base.Add(2*time.Second))
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("COFFEEu6", got[0].SerialNumber)
	})

	s.Run("other pass type", func() {
		got, err := store.UpdatedSerials(s.ctx, "device-1", "pass.com.example.other", time.Time{})
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *PostgresUoWTestSuite) TestFindBySerialLastModified() {
	store := readstore.NewPassReadStore(s.pool)
	p := s.issue("u8", card.Snapshot{CardType: "gift"})

	view, err := store.FindBySerial(s.ctx, p.SerialNumber())
	s.Require().NoError(err)
	s.WithinDuration(p.UpdatedAt(), view.LastModified, time.Millisecond)

	later := p.UpdatedAt().Add(time.Hour)
	s.appendUpdate(p, later)

	view, err = store.FindBySerial(s.ctx, p.SerialNumber())
	s.Require().NoError(err)
	s.WithinDuration(later, view.LastModified, time.Millisecond)
	s.Equal("gift", view.Snapshot.CardType)

	_, err = store.FindBySerial(s.ctx, "COFFEEmissing")
	assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
}

func TestConcurrentRegistrationsCollapse(t *testing.T) {
	pool := dbtest.NewPool(t)
	u := uow.NewPostgresUoW(pool)
	ctx := context.Background()

	p, err := pass.NewPass("race", passTypeID, card.Snapshot{}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, u.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, _, err = tx.Passes().Create(ctx, p)
		return err
	}))

	const workers = 8
	results := make(chan bool, workers)
	errCh := make(chan error, workers)
	for range workers {
		go func() {
			token, _ := device.ParsePushToken([]byte("token"))
			reg, _ := device.NewRegistration(p.ID(), "device-race", token, time.Now().UTC())
			err := u.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
				inserted, err := tx.Registrations().Upsert(ctx, reg)
				results <- inserted
				return err
			})
			errCh <- err
		}()
	}

	inserted := 0
	for range workers {
		require.NoError(t, <-errCh)
		if <-results {
			inserted++
		}
	}
	assert.Equal(t, 1, inserted)
}
