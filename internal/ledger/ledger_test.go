package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDebitInsufficientFunds(t *testing.T) {
	l := New()
	l.Reconcile(decimal.NewFromInt(100))

	err := l.Debit(decimal.NewFromInt(101))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, l.Balance().Equal(decimal.NewFromInt(100)))

	require.NoError(t, l.Debit(decimal.NewFromInt(100)))
	require.True(t, l.Balance().IsZero())
}

func TestCreditAlwaysApplies(t *testing.T) {
	l := New()
	l.Credit(decimal.NewFromInt(250))
	l.Credit(decimal.Zero)
	require.True(t, l.Balance().Equal(decimal.NewFromInt(250)))
}

func TestReconcileOverwrites(t *testing.T) {
	l := New()
	l.Credit(decimal.NewFromInt(9999))
	l.Reconcile(decimal.NewFromFloat(123.45))
	require.True(t, l.Balance().Equal(decimal.NewFromFloat(123.45)))

	// repeated reconciles with the same snapshot must not accumulate
	l.Reconcile(decimal.NewFromFloat(123.45))
	require.True(t, l.Balance().Equal(decimal.NewFromFloat(123.45)))
}

func TestSinksSeeEveryMutation(t *testing.T) {
	l := New()
	var seen []string
	l.RegisterSink("display", func(b decimal.Decimal) {
		seen = append(seen, b.StringFixed(2))
	})

	l.Reconcile(decimal.NewFromInt(100))
	require.NoError(t, l.Debit(decimal.NewFromInt(40)))
	l.Credit(decimal.NewFromInt(15))
	require.Equal(t, []string{"100.00", "60.00", "75.00"}, seen)

	// a failed debit must not refresh the display
	require.Error(t, l.Debit(decimal.NewFromInt(1000)))
	require.Len(t, seen, 3)
}

func TestRegisterSinkReplacesByName(t *testing.T) {
	l := New()
	first, second := 0, 0
	l.RegisterSink("display", func(decimal.Decimal) { first++ })
	l.RegisterSink("display", func(decimal.Decimal) { second++ })

	l.Credit(decimal.NewFromInt(1))
	require.Zero(t, first)
	require.Equal(t, 1, second)
}
