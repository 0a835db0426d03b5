//go:build unit

package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/domain/platform"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/pkg/clock"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"
	sharedmock "loyalty-wallet/internal/mock/shared"
	usecasemock "loyalty-wallet/internal/mock/usecase"
	"loyalty-wallet/internal/usecase"
	"loyalty-wallet/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	iPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
	androidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

type PassGeneratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	apple     *usecasemock.MockAppleGenerator
	google    *usecasemock.MockGoogleGenerator
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	passes    *sharedmock.MockPassRepository
	updates   *sharedmock.MockPassUpdateRepository
	generator usecase.PassGenerator
	ctx       context.Context
}

func TestPassGeneratorSuite(t *testing.T) {
	suite.Run(t, new(PassGeneratorTestSuite))
}

func (s *PassGeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.apple = usecasemock.NewMockAppleGenerator(s.ctrl)
	s.google = usecasemock.NewMockGoogleGenerator(s.ctrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.passes = sharedmock.NewMockPassRepository(s.ctrl)
	s.updates = sharedmock.NewMockPassUpdateRepository(s.ctrl)
	s.ctx = context.Background()

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, s.tx)
	}
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	s.tx.EXPECT().Passes().Return(s.passes).AnyTimes()
	s.tx.EXPECT().Updates().Return(s.updates).AnyTimes()

	cfg := config.NewTestConfig()
	s.generator = usecase.NewPassGenerator(
		s.apple, s.google, s.uow,
		clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *PassGeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectRecord covers a first issuance: no stored card, then a fresh insert.
func (s *PassGeneratorTestSuite) expectRecord(userID string, stamps int, cardType string) {
	s.expectUnissued(userID)
	s.passes.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *pass.Pass) (*pass.Pass, bool, error) {
			s.Equal(card.SerialNumber(userID), p.SerialNumber())
			s.Equal("pass.com.example.loyalty", p.PassTypeID())
			s.Equal(stamps, p.Snapshot().StampCount)
			s.Equal(cardType, p.Snapshot().CardType)
			return p, true, nil
		})
}

func (s *PassGeneratorTestSuite) expectUnissued(userID string) {
	s.passes.EXPECT().FindBySerial(gomock.Any(), card.SerialNumber(userID)).
		Return(nil, infra.WrapRepoErr("failed to find pass by serial", nil, infra.KindNotFound))
}

func (s *PassGeneratorTestSuite) storedPass(userID string, snap card.Snapshot) *pass.Pass {
	issued := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return pass.ReconstructPass(uuid.New(), card.SerialNumber(userID), "pass.com.example.loyalty", userID, snap, issued, issued)
}

func (s *PassGeneratorTestSuite) TestIOS() {
	s.Run("apple generator receives defaulted card type", func() {
		s.google.EXPECT().Enabled().Return(false).AnyTimes()
		s.apple.EXPECT().Generate(gomock.Any(), "u1", 5, "stamp", (*card.Snapshot)(nil)).
			Return([]byte("PK\x03\x04pkpass"), nil)
		s.expectRecord("u1", 5, "stamp")

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u1", StampCount: 5, UserAgent: iPhoneUA,
		})

		s.Require().NoError(err)
		s.Equal(platform.IOS, res.Platform)
		s.Equal(usecase.PKPassMimeType, res.MimeType)
		s.Equal("COFFEEu1.pkpass", res.FileName)
		raw, err := base64.StdEncoding.DecodeString(res.Data)
		s.Require().NoError(err)
		s.Equal([]byte("PK\x03\x04pkpass"), raw)
	})

	s.Run("explicit hint wins over user agent", func() {
		s.apple.EXPECT().Generate(gomock.Any(), "u2", 0, "points", gomock.Any()).Return([]byte("PK"), nil)
		s.expectRecord("u2", 0, "points")

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u2", CardType: "points", Platform: platform.IOS, UserAgent: androidUA,
		})
		s.Require().NoError(err)
		s.Equal(platform.IOS, res.Platform)
	})

	s.Run("generation failure is returned and nothing is recorded", func() {
		boom := errs.Stage(errors.New("status 500"), "fetch signing material")
		s.expectUnissued("u3")
		s.apple.EXPECT().Generate(gomock.Any(), "u3", 1, "stamp", gomock.Any()).Return(nil, boom)

		_, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u3", StampCount: 1, UserAgent: iPhoneUA,
		})
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrPassGeneration))
		s.Contains(err.Error(), "fetch signing material")
	})
}

func (s *PassGeneratorTestSuite) TestAndroid() {
	s.Run("google enabled returns save url", func() {
		s.google.EXPECT().Enabled().Return(true)
		s.google.EXPECT().Generate(gomock.Any(), "u1", 3, "gift", gomock.Any()).
			Return("https://pay.google.com/gp/v/save/token", nil)
		s.expectRecord("u1", 3, "gift")

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u1", StampCount: 3, CardType: "gift", UserAgent: androidUA,
		})
		s.Require().NoError(err)
		s.Equal(platform.Android, res.Platform)
		s.Equal("https://pay.google.com/gp/v/save/token", res.Data)
		s.Equal(usecase.SaveURLMimeType, res.MimeType)
	})

	s.Run("google disabled falls back to pwa", func() {
		s.google.EXPECT().Enabled().Return(false)

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u1", CardType: "stamp", UserAgent: androidUA,
		})
		s.Require().NoError(err)
		s.Equal(platform.PWA, res.Platform)
		s.Equal("pwa", res.Type)
	})

	s.Run("card opt-out falls back to pwa", func() {
		off := false
		s.google.EXPECT().Enabled().Return(true)

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{
			UserID: "u1", UserAgent: androidUA, CardData: &card.Snapshot{GoogleWalletEnabled: &off},
		})
		s.Require().NoError(err)
		s.Equal(platform.PWA, res.Platform)
	})
}

func (s *PassGeneratorTestSuite) TestPWA() {
	tests := []struct {
		name    string
		req     usecase.PassRequest
		wantURL string
	}{
		{
			name:    "desktop browser",
			req:     usecase.PassRequest{UserID: "u1", CardType: "points", UserAgent: desktopUA},
			wantURL: "https://app.example.com/cards/u1?userId=u1&cardType=points",
		},
		{
			name:    "template is appended",
			req:     usecase.PassRequest{UserID: "u1", UserAgent: desktopUA, TemplateID: "t-9"},
			wantURL: "https://app.example.com/cards/u1?userId=u1&cardType=stamp&template=t-9",
		},
		{
			name:    "explicit pwa hint on iphone",
			req:     usecase.PassRequest{UserID: "u 2", CardType: "unknown", Platform: platform.PWA, UserAgent: iPhoneUA},
			wantURL: "https://app.example.com/cards/u%202?userId=u+2&cardType=stamp",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.google.EXPECT().Enabled().Return(false)

			res, err := s.generator.GeneratePassForPlatform(s.ctx, tt.req)
			s.Require().NoError(err)
			s.Equal(platform.PWA, res.Platform)
			s.Equal("pwa", res.Type)
			s.Equal(tt.wantURL, res.URL)
		})
	}
}

func (s *PassGeneratorTestSuite) TestRejectsEmptyUserID() {
	_, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{UserID: "  ", UserAgent: iPhoneUA})
	s.ErrorIs(err, errs.ErrInvalidUserID)

	_, _, err = s.generator.ApplePass(s.ctx, usecase.PassRequest{})
	s.ErrorIs(err, errs.ErrInvalidUserID)
}

func (s *PassGeneratorTestSuite) TestRecordFailure() {
	s.expectUnissued("u1")
	s.apple.EXPECT().Generate(gomock.Any(), "u1", 0, "stamp", gomock.Any()).Return([]byte("PK"), nil)
	s.passes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("connection refused"))

	_, _, err := s.generator.ApplePass(s.ctx, usecase.PassRequest{UserID: "u1"})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *PassGeneratorTestSuite) TestLookupFailure() {
	s.passes.EXPECT().FindBySerial(gomock.Any(), "COFFEEu1").Return(nil, errors.New("connection refused"))

	_, _, err := s.generator.ApplePass(s.ctx, usecase.PassRequest{UserID: "u1"})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *PassGeneratorTestSuite) TestReissue() {
	s.Run("re-download keeps scanner counters and stored design", func() {
		stored := s.storedPass("u1", card.Snapshot{
			CardType: "stamp", StampCount: 7, RewardsCollected: 2, BusinessName: "Bean There",
		})
		s.passes.EXPECT().FindBySerial(gomock.Any(), "COFFEEu1").Return(stored, nil)
		s.apple.EXPECT().Generate(gomock.Any(), "u1", 7, "stamp", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int, _ string, data *card.Snapshot) ([]byte, error) {
				s.Equal(2, data.RewardsCollected)
				s.Equal("Bean There", data.BusinessName)
				return []byte("PK"), nil
			})
		s.passes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, false, nil)

		// what the download endpoint sends when the query is empty
		_, serial, err := s.generator.ApplePass(s.ctx, usecase.PassRequest{UserID: "u1"})
		s.Require().NoError(err)
		s.Equal("COFFEEu1", serial)
	})

	s.Run("new design is stored with counters and logged for devices", func() {
		stored := s.storedPass("u1", card.Snapshot{
			CardType: "stamp", StampCount: 7, RewardsCollected: 2, BusinessName: "Bean There",
		})
		s.passes.EXPECT().FindBySerial(gomock.Any(), "COFFEEu1").Return(stored, nil)
		s.apple.EXPECT().Generate(gomock.Any(), "u1", 7, "stamp", gomock.Any()).Return([]byte("PK"), nil)
		s.passes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, false, nil)
		s.passes.EXPECT().UpdateSnapshot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, next *pass.Pass) error {
				s.Equal(stored.ID(), next.ID())
				s.Equal(7, next.Snapshot().StampCount)
				s.Equal(2, next.Snapshot().RewardsCollected)
				s.Equal("Bean Here", next.Snapshot().BusinessName)
				return nil
			})
		s.updates.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u device.PassUpdate) error {
				s.Equal(stored.ID(), u.PassID)
				s.Equal(usecase.ActionReissue, u.Metadata["action"])
				return nil
			})

		_, _, err := s.generator.ApplePass(s.ctx, usecase.PassRequest{
			UserID:   "u1",
			CardData: &card.Snapshot{BusinessName: "Bean Here"},
		})
		s.Require().NoError(err)
	})

	s.Run("google reissue keeps counters", func() {
		stored := s.storedPass("u2", card.Snapshot{CardType: "points", StampCount: 4, PointsBalance: 90})
		s.google.EXPECT().Enabled().Return(true)
		s.passes.EXPECT().FindBySerial(gomock.Any(), "COFFEEu2").Return(stored, nil)
		s.google.EXPECT().Generate(gomock.Any(), "u2", 4, "points", gomock.Any()).Return("https://pay.google.com/gp/v/save/t", nil)
		s.passes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, false, nil)

		res, err := s.generator.GeneratePassForPlatform(s.ctx, usecase.PassRequest{UserID: "u2", UserAgent: androidUA})
		s.Require().NoError(err)
		s.Equal(platform.Android, res.Platform)
	})
}

func (s *PassGeneratorTestSuite) TestRenderStoredPassDoesNotRecord() {
	snap := card.Snapshot{CardType: "Reward", StampCount: 4, PointsBalance: 120}
	s.apple.EXPECT().Generate(gomock.Any(), "u1", 4, "reward", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int, _ string, data *card.Snapshot) ([]byte, error) {
			s.Equal(120, data.PointsBalance)
			return []byte("PK"), nil
		})

	buf, err := s.generator.RenderStoredPass(s.ctx, "u1", snap)
	s.Require().NoError(err)
	s.Equal([]byte("PK"), buf)
}
