package ledger

import (
	"testing"

	"github.com/finchapp/finch/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func testTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "a", Date: "2024-01-01", Payee: "A", Category: "Food", Amount: 100},
		{ID: "b", Date: "2024-01-02", Payee: "B", Category: "Rent", Amount: -40},
	}
}

func TestBalance(t *testing.T) {
	l := NewList()
	assert.Equal(t, 0.0, l.Balance())

	l.Replace(testTransactions())
	assert.Equal(t, 60.0, l.Balance())
}

func TestAppendMovesBalanceByAmount(t *testing.T) {
	l := NewList()
	l.Replace(testTransactions())

	l.Append(entity.Transaction{ID: "c", Date: "2024-01-03", Payee: "C", Category: "Misc", Amount: -60})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0.0, l.Balance())
}

func TestReplaceByID(t *testing.T) {
	l := NewList()
	l.Replace(testTransactions())

	// Update changes the balance by exactly the record's delta.
	ok := l.ReplaceByID(entity.Transaction{ID: "b", Date: "2024-01-02", Payee: "B", Category: "Rent", Amount: -10})

	assert.True(t, ok)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 90.0, l.Balance())
	assert.Equal(t, -10.0, l.At(1).Amount)

	assert.False(t, l.ReplaceByID(entity.Transaction{ID: "missing"}))
}

func TestRemoveByID(t *testing.T) {
	l := NewList()
	l.Replace(testTransactions())

	ok := l.RemoveByID("b")

	assert.True(t, ok)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 100.0, l.Balance())

	assert.False(t, l.RemoveByID("b"), "second remove of the same ID finds nothing")
}

func TestTransactionsReturnsCopy(t *testing.T) {
	l := NewList()
	l.Replace(testTransactions())

	got := l.Transactions()
	got[0].Amount = 999
	got[1].ID = "z"

	assert.Equal(t, 100.0, l.At(0).Amount)
	assert.Equal(t, "b", l.At(1).ID)
	assert.Equal(t, 60.0, l.Balance())
}

func TestReplaceCopiesInput(t *testing.T) {
	src := testTransactions()
	l := NewList()
	l.Replace(src)

	src[0].Amount = 999

	assert.Equal(t, 100.0, l.At(0).Amount)
}
