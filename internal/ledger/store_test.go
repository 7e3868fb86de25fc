package ledger

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendr/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(t, want).Equal(got), "got %s, want %s", got, want)
}

func TestEmptyStore(t *testing.T) {
	s := New()
	requireDecimal(t, "0", s.TotalExpenses())
	require.Empty(t, s.TotalByCategory())
	require.Empty(t, s.Records())
	require.Zero(t, s.Len())
}

func TestZeroValueStoreAcceptsWrites(t *testing.T) {
	var s Store
	s.AddExpense("Other", dec(t, "1.5"), model.NewDate(2024, 1, 1))
	requireDecimal(t, "1.5", s.TotalExpenses())
}

func TestGroceriesTransportScenario(t *testing.T) {
	s := New()
	s.AddExpense("Groceries", dec(t, "50.0"), model.NewDate(2024, 1, 1))
	s.AddExpense("Transport", dec(t, "20.0"), model.NewDate(2024, 1, 2))
	s.AddExpense("Groceries", dec(t, "30.0"), model.NewDate(2024, 1, 3))

	requireDecimal(t, "100", s.TotalExpenses())

	byCat := s.TotalByCategory()
	require.Len(t, byCat, 2)
	requireDecimal(t, "80", byCat["Groceries"])
	requireDecimal(t, "20", byCat["Transport"])
}

func TestRecordsOrderAndGrouping(t *testing.T) {
	s := New()
	s.AddExpense("B", dec(t, "1"), model.NewDate(2024, 3, 1))
	s.AddExpense("A", dec(t, "2"), model.NewDate(2024, 3, 2))
	s.AddExpense("B", dec(t, "3"), model.NewDate(2024, 3, 3))

	recs := s.Records()
	require.Len(t, recs, 3)

	var got []string
	for _, r := range recs {
		got = append(got, r.Category()+":"+r.Amount().String())
	}
	assert.Equal(t, []string{"B:1", "B:3", "A:2"}, got)
	assert.Equal(t, []string{"B", "A"}, s.Categories())

	for _, cat := range s.Categories() {
		for _, r := range s.ByCategory(cat) {
			assert.Equal(t, cat, r.Category())
		}
	}
}

func TestByCategoryReturnsCopy(t *testing.T) {
	s := New()
	s.AddExpense("Health", dec(t, "12"), model.NewDate(2024, 5, 5))

	list := s.ByCategory("Health")
	list[0] = model.NewExpense("Other", dec(t, "999"), model.NewDate(2000, 1, 1))

	requireDecimal(t, "12", s.TotalExpenses())
	assert.Equal(t, "Health", s.ByCategory("Health")[0].Category())
}

func TestRandomSequencesHoldAggregateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := []string{"Groceries", "Transport", "Housing", "Health", "Other"}

	for round := 0; round < 50; round++ {
		s := New()
		want := decimal.Zero
		n := rng.Intn(200)
		for i := 0; i < n; i++ {
			amount := decimal.New(rng.Int63n(1_000_000), -2)
			want = want.Add(amount)
			day := model.DateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365)))
			s.AddExpense(cats[rng.Intn(len(cats))], amount, day)
		}

		total := s.TotalExpenses()
		require.True(t, want.Equal(total), "round %d: total %s, want %s", round, total, want)

		byCat := s.TotalByCategory()
		sum := decimal.Zero
		for cat, v := range byCat {
			require.NotEmpty(t, s.ByCategory(cat), "category %q has no records", cat)
			sum = sum.Add(v)
		}
		require.True(t, total.Equal(sum), "round %d: category sum %s != total %s", round, sum, total)
		require.Equal(t, n, s.Len())
		require.Len(t, s.Records(), n)

		// Reads are idempotent.
		require.True(t, total.Equal(s.TotalExpenses()))
		again := s.TotalByCategory()
		require.Len(t, again, len(byCat))
		for cat, v := range byCat {
			require.True(t, v.Equal(again[cat]))
		}
	}
}

func TestSyncedConcurrentAdds(t *testing.T) {
	l := NewSynced(nil)
	one := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.AddExpense("Other", one, model.NewDate(2024, 1, 1))
				_ = l.TotalExpenses()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, l.Len())
	requireDecimal(t, "800", l.TotalExpenses())
	requireDecimal(t, "800", l.TotalByCategory()["Other"])
	require.Equal(t, []string{"Other"}, l.Categories())
	require.Len(t, l.Records(), 800)
}
