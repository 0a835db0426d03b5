//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/infra"
	queriesmock "loyalty-wallet/internal/mock/queries"
	"loyalty-wallet/internal/pkg/errs"
	"loyalty-wallet/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const passTypeID = "pass.com.example.loyalty"

func TestUpdatedSerials(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns serials and the latest tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPassReadStore(ctrl)
		store.EXPECT().UpdatedSerials(ctx, "device-1", passTypeID, time.UnixMilli(1772366400000).UTC()).
			Return([]queries.SerialUpdate{
				{SerialNumber: "COFFEEu1", UpdatedAt: base.Add(2*time.Second + 700*time.Microsecond)},
				{SerialNumber: "COFFEEu2", UpdatedAt: base.Add(time.Second)},
			}, nil)

		view, err := queries.NewPassQueries(store).UpdatedSerials(ctx, "device-1", passTypeID, "1772366400000")
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"COFFEEu1", "COFFEEu2"}, view.SerialNumbers); diff != "" {
			t.Errorf("serials mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "1772366402000", view.LastUpdated)
	})

	t.Run("nothing changed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPassReadStore(ctrl)
		store.EXPECT().UpdatedSerials(ctx, "device-1", passTypeID, time.Time{}).Return(nil, nil)

		view, err := queries.NewPassQueries(store).UpdatedSerials(ctx, "device-1", passTypeID, "")
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("malformed tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPassReadStore(ctrl)

		_, err := queries.NewPassQueries(store).UpdatedSerials(ctx, "device-1", passTypeID, "yesterday")
		assert.ErrorIs(t, err, errs.ErrInvalidUpdateTag)
	})
}

func TestPassBySerial(t *testing.T) {
	ctx := context.Background()
	view := &queries.PassView{
		ID:           uuid.New(),
		SerialNumber: "COFFEEu1",
		PassTypeID:   passTypeID,
		UserID:       "u1",
		Snapshot:     card.Snapshot{CardType: "stamp", StampCount: 4},
	}

	tests := []struct {
		name       string
		passTypeID string
		storeView  *queries.PassView
		storeErr   error
		wantErr    error
		wantMark   error
	}{
		{name: "found", passTypeID: passTypeID, storeView: view},
		{name: "pass type mismatch", passTypeID: "pass.com.example.other", storeView: view, wantErr: errs.ErrPassNotFound, wantMark: errs.ErrUnknownPassType},
		{
			name:       "missing",
			passTypeID: passTypeID,
			storeErr:   infra.WrapRepoErr("failed to find pass view by serial", nil, infra.KindNotFound),
			wantErr:    errs.ErrPassNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPassReadStore(ctrl)
			store.EXPECT().FindBySerial(ctx, "COFFEEu1").Return(tt.storeView, tt.storeErr)

			got, err := queries.NewPassQueries(store).PassBySerial(ctx, tt.passTypeID, "COFFEEu1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMark != nil {
					assert.True(t, errs.Is(err, tt.wantMark))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestCardByCode(t *testing.T) {
	ctx := context.Background()
	modified := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	codes := []string{"USERu1", "COFFEEu1", "u1"}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPassReadStore(ctrl)
			store.EXPECT().FindBySerial(ctx, "COFFEEu1").Return(&queries.PassView{
				SerialNumber: "COFFEEu1",
				PassTypeID:   passTypeID,
				UserID:       "u1",
				Snapshot:     card.Snapshot{StampCount: 10, RewardsCollected: 3, BusinessName: "Bean There"},
				LastModified: modified,
			}, nil)

			got, err := queries.NewPassQueries(store).CardByCode(ctx, code)
			require.NoError(t, err)
			assert.Equal(t, "u1", got.UserID)
			assert.Equal(t, "stamp", got.CardType)
			assert.Equal(t, "Bean There", got.BusinessName)
			assert.Equal(t, 10, got.StampThreshold)
			assert.Equal(t, 3, got.RewardsCollected)
			assert.True(t, got.RewardReady)
			assert.Equal(t, modified, got.LastModified)
		})
	}

	t.Run("empty code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPassReadStore(ctrl)

		_, err := queries.NewPassQueries(store).CardByCode(ctx, " ")
		assert.ErrorIs(t, err, errs.ErrInvalidScannerCode)
	})
}
