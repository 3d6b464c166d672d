package partner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence"
	"github.com/shop-ledger/backend/internal/integration/persistence/testdb"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func createPartner(t *testing.T, db *gorm.DB, name, share string) *entity.Partner {
	t.Helper()
	p, err := NewCreatePartnerUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background(), CreatePartnerInput{
		Name:            name,
		SharePercentage: dec(share),
	})
	require.NoError(t, err)
	return p
}

func TestCreatePartner_ShareTotalCapped(t *testing.T) {
	db := testdb.Open(t)
	createPartner(t, db, "Alice", "60")

	_, err := NewCreatePartnerUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background(), CreatePartnerInput{
		Name:            "Bob",
		SharePercentage: dec("50"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrShareTotalExceeded))
	assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err))

	var coded domainerror.Coded
	require.True(t, errors.As(err, &coded))
	assert.Contains(t, coded.ErrorMessage(), "Total share percentage cannot exceed 100%. Current total: 60")

	createPartner(t, db, "Bob", "40")
}

func TestCreatePartner_FractionalSharesReachExactlyHundred(t *testing.T) {
	db := testdb.Open(t)
	createPartner(t, db, "Alice", "0.1")
	createPartner(t, db, "Bob", "0.2")
	carol := createPartner(t, db, "Carol", "99.7")
	assert.True(t, dec("99.7").Equal(carol.SharePercentage))

	_, err := NewCreatePartnerUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background(), CreatePartnerInput{
		Name:            "Dave",
		SharePercentage: dec("0.01"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrShareTotalExceeded))

	var coded domainerror.Coded
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, "Total share percentage cannot exceed 100%. Current total: 100%", coded.ErrorMessage())

	share := dec("99.7")
	updated, err := NewUpdatePartnerUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background(), UpdatePartnerInput{
		PartnerID: carol.ID,
		Patch:     entity.PartnerPatch{SharePercentage: &share},
	})
	require.NoError(t, err)
	assert.True(t, share.Equal(updated.SharePercentage))
}

func TestCreatePartner_ShareRoundedToStoredScale(t *testing.T) {
	db := testdb.Open(t)
	createPartner(t, db, "Alice", "99.995")

	partners, err := NewListPartnersUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.True(t, dec("100").Equal(partners[0].SharePercentage), "got %s", partners[0].SharePercentage.String())
}

func TestCreatePartner_Validation(t *testing.T) {
	db := testdb.Open(t)
	uc := NewCreatePartnerUseCase(persistence.NewPartnerRepository(db))

	_, err := uc.Execute(context.Background(), CreatePartnerInput{Name: " ", SharePercentage: dec("10")})
	assert.True(t, errors.Is(err, domainerror.ErrPartnerMissingFields))

	_, err = uc.Execute(context.Background(), CreatePartnerInput{Name: "Eve", SharePercentage: dec("100.01")})
	assert.True(t, errors.Is(err, domainerror.ErrPartnerInvalidShare))
}

func TestCreatePartner_ConcurrentWritesKeepTotalWithinLimit(t *testing.T) {
	db := testdb.Open(t)
	uc := NewCreatePartnerUseCase(persistence.NewPartnerRepository(db))

	const writers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreatePartnerInput{
				Name:            fmt.Sprintf("Partner %d", i),
				SharePercentage: dec("30"),
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, domainerror.ErrShareTotalExceeded), "unexpected error: %v", err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	partners, err := NewListPartnersUseCase(persistence.NewPartnerRepository(db)).Execute(context.Background())
	require.NoError(t, err)
	total := decimal.Zero
	for _, p := range partners {
		total = total.Add(p.SharePercentage)
	}
	assert.True(t, total.LessThanOrEqual(entity.MaxTotalShare), "total %s", total.String())
}

func TestUpdatePartner_ExcludesOwnShare(t *testing.T) {
	db := testdb.Open(t)
	alice := createPartner(t, db, "Alice", "60")
	createPartner(t, db, "Bob", "40")
	uc := NewUpdatePartnerUseCase(persistence.NewPartnerRepository(db))
	ctx := context.Background()

	share := dec("60")
	updated, err := uc.Execute(ctx, UpdatePartnerInput{PartnerID: alice.ID, Patch: entity.PartnerPatch{SharePercentage: &share}})
	require.NoError(t, err)
	assert.True(t, share.Equal(updated.SharePercentage))

	over := dec("61")
	_, err = uc.Execute(ctx, UpdatePartnerInput{PartnerID: alice.ID, Patch: entity.PartnerPatch{SharePercentage: &over}})
	assert.True(t, errors.Is(err, domainerror.ErrShareTotalExceeded))

	name := "Alicia"
	renamed, err := uc.Execute(ctx, UpdatePartnerInput{PartnerID: alice.ID, Patch: entity.PartnerPatch{Name: &name}})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", renamed.Name)
	assert.True(t, dec("60").Equal(renamed.SharePercentage))

	_, err = uc.Execute(ctx, UpdatePartnerInput{PartnerID: 999, Patch: entity.PartnerPatch{Name: &name}})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestDeletePartner(t *testing.T) {
	db := testdb.Open(t)
	p := createPartner(t, db, "Alice", "10")
	uc := NewDeletePartnerUseCase(persistence.NewPartnerRepository(db))

	require.NoError(t, uc.Execute(context.Background(), p.ID))
	err := uc.Execute(context.Background(), p.ID)
	assert.True(t, errors.Is(err, domainerror.ErrPartnerNotFound))
}

func TestGetPartnerStats_OrdersByShare(t *testing.T) {
	db := testdb.Open(t)
	createPartner(t, db, "Small", "25")
	createPartner(t, db, "Large", "75")
	require.NoError(t, persistence.NewIncomeRepository(db).Create(context.Background(), &entity.Income{
		Description: "Sale", Amount: dec("1000"), Type: entity.EntryTypeManual, CreatedAt: time.Now().UTC(),
	}))

	uc := NewGetPartnerStatsUseCase(
		persistence.NewPartnerRepository(db),
		persistence.NewIncomeRepository(db),
		persistence.NewExpenseRepository(db),
	)
	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalPartners)
	require.Len(t, stats.Distribution.Shares, 2)
	assert.Equal(t, "Large", stats.Distribution.Shares[0].Partner.Name)
	assert.True(t, dec("735").Equal(stats.Distribution.Shares[0].ShareAmount))
	assert.True(t, dec("0").Equal(stats.Distribution.RemainingShare))
}

func TestGetProfitHistory(t *testing.T) {
	db := testdb.Open(t)
	p := createPartner(t, db, "Alice", "50")
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	ctx := context.Background()
	require.NoError(t, incomeRepo.Create(ctx, &entity.Income{
		Description: "Sale", Amount: dec("1000"), Type: entity.EntryTypeManual,
		CreatedAt: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, expenseRepo.Create(ctx, &entity.Expense{
		Description: "Rent", Amount: dec("500"), Type: entity.EntryTypeManual,
		CreatedAt: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
	}))

	uc := NewGetProfitHistoryUseCase(persistence.NewPartnerRepository(db), incomeRepo, expenseRepo)
	uc.now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

	history, err := uc.Execute(ctx, GetProfitHistoryInput{PartnerID: &p.ID, Months: 3})
	require.NoError(t, err)

	require.Len(t, history.History, 2)
	assert.Equal(t, "2025-05", history.History[0].Month)
	assert.True(t, dec("490").Equal(history.History[0].PartnerShare))
	assert.Equal(t, "2025-04", history.History[1].Month)
	assert.True(t, dec("-245").Equal(history.History[1].PartnerShare))
	assert.True(t, dec("245").Equal(history.TotalPartnerShare))

	_, err = uc.Execute(ctx, GetProfitHistoryInput{Months: 3})
	assert.True(t, errors.Is(err, domainerror.ErrPartnerIDRequired))
}
