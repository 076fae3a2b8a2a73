package installments

import (
	"testing"
	"time"

	"espaco_vista/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SplitsWithRemainderOnLast(t *testing.T) {
	first := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)

	got, err := Build(1000, Plan{Count: 3, FirstDue: first, IntervalDays: 30})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 333.33, got[0].Amount)
	assert.Equal(t, 333.33, got[1].Amount)
	assert.Equal(t, 333.34, got[2].Amount)

	sum := decimal.Zero
	for i, inst := range got {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, entities.InstallmentStatusPending, inst.Status)
		assert.Equal(t, first.AddDate(0, 0, 30*i), inst.DueDate)
		sum = sum.Add(decimal.NewFromFloat(inst.Amount))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1000)))
}

func TestBuild_SingleInstallment(t *testing.T) {
	got, err := Build(830, Plan{Count: 1, FirstDue: time.Now()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 830.0, got[0].Amount)
}

func TestBuild_Validation(t *testing.T) {
	_, err := Build(100, Plan{Count: 0})
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Build(100, Plan{Count: 25, IntervalDays: 30})
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Build(100, Plan{Count: 2})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Build(-1, Plan{Count: 1})
	assert.ErrorIs(t, err, ErrInvalidTotal)
}
