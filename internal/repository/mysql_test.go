package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMySQLRepository_RecordClick(t *testing.T) {
	ctx := context.Background()

	t.Run("monetized click moves clicks and earnings", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		event := &model.ClickEvent{
			LinkID:                  7,
			OwnerID:                 "user-1",
			CpmMicros:               3_000_000,
			EarningsGeneratedMicros: 3_000,
			Monetized:               true,
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `clicks`=clicks + ?,`generated_earnings_micros`=generated_earnings_micros + ?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.RecordClick(ctx, event)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-monetized click moves the counter only", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		event := &model.ClickEvent{
			LinkID:  7,
			OwnerID: "user-1",
			Reason:  model.ReasonWithinWindow,
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `clicks`=clicks + ? WHERE")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.RecordClick(ctx, event)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event insert failure rolls back the counter", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		event := &model.ClickEvent{LinkID: 7, OwnerID: "user-1"}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `clicks`=clicks + ? WHERE")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.RecordClick(ctx, event)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func payoutRows(status string, processedAt *time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "amount_micros", "method", "destination", "status", "requested_at", "processed_at",
	}).AddRow(5, "user-1", int64(10_000_000), "paypal", "user@example.com", status, time.Now(), processedAt)
}

func TestMySQLRepository_ApprovePayout(t *testing.T) {
	ctx := context.Background()
	processedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("approve pending payout", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payout_requests` WHERE `payout_requests`.`id` = ?")).
			WillReturnRows(payoutRows(model.PayoutPending, nil))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `payout_requests` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `user_profiles` SET `paid_earnings_micros`=paid_earnings_micros + ?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req, err := repo.ApprovePayout(ctx, 5, processedAt)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutCompleted, req.Status)
		assert.Equal(t, &processedAt, req.ProcessedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second approval is rejected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		done := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payout_requests` WHERE `payout_requests`.`id` = ?")).
			WillReturnRows(payoutRows(model.PayoutCompleted, &done))
		mock.ExpectRollback()

		req, err := repo.ApprovePayout(ctx, 5, processedAt)
		assert.ErrorIs(t, err, ErrPayoutNotPending)
		assert.Nil(t, req)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("approving a rejected payout fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		done := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payout_requests` WHERE `payout_requests`.`id` = ?")).
			WillReturnRows(payoutRows(model.PayoutRejected, &done))
		mock.ExpectRollback()

		_, err := repo.ApprovePayout(ctx, 5, processedAt)
		assert.ErrorIs(t, err, ErrPayoutNotPending)
	})
}

func TestMySQLRepository_RejectPayout(t *testing.T) {
	ctx := context.Background()
	processedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("reject pending payout without balance mutation", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payout_requests` WHERE `payout_requests`.`id` = ?")).
			WillReturnRows(payoutRows(model.PayoutPending, nil))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `payout_requests` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req, err := repo.RejectPayout(ctx, 5, processedAt)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutRejected, req.Status)
		// No user_profiles update expected: rejection releases the
		// reservation without paying anything out
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reject already processed payout", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		done := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payout_requests` WHERE `payout_requests`.`id` = ?")).
			WillReturnRows(payoutRows(model.PayoutCompleted, &done))
		mock.ExpectRollback()

		_, err := repo.RejectPayout(ctx, 5, processedAt)
		assert.ErrorIs(t, err, ErrPayoutNotPending)
	})
}

func TestMySQLRepository_OpenCpmPeriod(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("closes the open period and opens a new one", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `cpm_periods` SET `ended_at`=?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `cpm_periods`")).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		period, err := repo.OpenCpmPeriod(ctx, 4_500_000, now)
		require.NoError(t, err)
		assert.Equal(t, int64(4_500_000), period.RateMicros)
		assert.Nil(t, period.EndedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close failure aborts the whole switch", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `cpm_periods` SET `ended_at`=?")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.OpenCpmPeriod(ctx, 4_500_000, now)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLRepository_CreateSponsorRule(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("insert below the cap", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sponsor_rules`")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `sponsor_rules`")).
			WillReturnResult(sqlmock.NewResult(9, 1))
		mock.ExpectCommit()

		sponsor := &model.SponsorRule{LinkID: 7, Title: "Sponsor", URL: "https://sponsor.example.com", IsActive: true}
		err := repo.CreateSponsorRule(ctx, sponsor, now)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cap reached rejects the insert", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sponsor_rules`")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		sponsor := &model.SponsorRule{LinkID: 7, Title: "Sponsor", URL: "https://sponsor.example.com", IsActive: true}
		err := repo.CreateSponsorRule(ctx, sponsor, now)
		assert.ErrorIs(t, err, ErrSponsorLimitReached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLRepository_BalanceSums(t *testing.T) {
	ctx := context.Background()

	t.Run("sum generated earnings", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(generated_earnings_micros), 0) FROM `links`")).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(12_000_000)))

		total, err := repo.SumGeneratedEarnings(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(12_000_000), total)
	})

	t.Run("sum pending payouts", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_micros), 0) FROM `payout_requests`")).
			WithArgs("user-1", model.PayoutPending).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(5_000_000)))

		total, err := repo.SumPendingPayouts(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(5_000_000), total)
	})

	t.Run("sum adjustments can be negative", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_micros), 0) FROM `balance_adjustments`")).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(-2_000_000)))

		total, err := repo.SumAdjustments(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(-2_000_000), total)
	})

	t.Run("no rows sums to zero", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(generated_earnings_micros), 0) FROM `links`")).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(0)))

		total, err := repo.SumGeneratedEarnings(ctx, "nobody")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestMySQLRepository_CheckExistsByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("existing code", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links`")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.CheckExistsByCode(ctx, "ABCD")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown code", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := &MySQLRepository{db: db}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links`")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.CheckExistsByCode(ctx, "NONE")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
