package form

import (
	"testing"

	"github.com/finchapp/finch/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		balance float64
		wantErr Errors
	}{
		{
			name: "all fields empty",
			form: Form{},
			wantErr: Errors{
				FieldDate:     "Date is required",
				FieldPayee:    "Payee is required",
				FieldCategory: "Category is required",
				FieldAmount:   "Amount is required",
			},
		},
		{
			name: "empty payee and empty amount surface both errors together",
			form: Form{Date: "2024-01-01", Category: "Food"},
			wantErr: Errors{
				FieldPayee:  "Payee is required",
				FieldAmount: "Amount is required",
			},
		},
		{
			name: "whitespace-only payee and category rejected",
			form: Form{Date: "2024-01-01", Payee: "   ", Category: "\t", Amount: "10"},
			wantErr: Errors{
				FieldPayee:    "Payee is required",
				FieldCategory: "Category is required",
			},
		},
		{
			name: "non-numeric amount rejected",
			form: Form{Date: "2024-01-01", Payee: "A", Category: "Food", Amount: "ten"},
			wantErr: Errors{
				FieldAmount: "Amount must be a number",
			},
		},
		{
			name:    "valid fields pass",
			form:    Form{Date: "2024-01-01", Payee: "A", Category: "Food", Amount: "12.50"},
			balance: 100,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			f.mode = CreateMode{}

			sub, errs := f.Validate(tt.balance)

			if tt.wantErr == nil {
				assert.Empty(t, errs)
				assert.Equal(t, f.Payee, sub.Payee)
				return
			}
			assert.Equal(t, tt.wantErr, errs)
		})
	}
}

func TestValidateParsesAmount(t *testing.T) {
	f := New()
	f.Date = "2024-01-01"
	f.Payee = "A"
	f.Category = "Food"
	f.Amount = " 12.5 "

	sub, errs := f.Validate(0)

	assert.Empty(t, errs)
	assert.Equal(t, 12.5, sub.Amount)
}

func TestOverdraftGuard(t *testing.T) {
	// Worked example: 100 + -40 loaded, balance 60.
	balance := 60.0

	newForm := func(amount string) *Form {
		f := New()
		f.Date = "2024-01-03"
		f.Payee = "C"
		f.Category = "Misc"
		f.Amount = amount
		return f
	}

	t.Run("expense exceeding balance rejected in create mode", func(t *testing.T) {
		_, errs := newForm("-70").Validate(balance)
		assert.Equal(t, Errors{FieldAmount: "Balance is too low for this transaction"}, errs)
	})

	t.Run("expense equal to balance accepted", func(t *testing.T) {
		sub, errs := newForm("-60").Validate(balance)
		assert.Empty(t, errs)
		assert.Equal(t, -60.0, sub.Amount)
	})

	t.Run("credit never blocked", func(t *testing.T) {
		_, errs := newForm("1000").Validate(0)
		assert.Empty(t, errs)
	})

	t.Run("edit mode is exempt from the guard", func(t *testing.T) {
		f := New()
		f.BeginEdit(entity.Transaction{
			ID:       "tx-1",
			Date:     "2024-01-02",
			Payee:    "B",
			Category: "Rent",
			Amount:   -40,
		})
		f.Amount = "-70"

		sub, errs := f.Validate(balance)

		assert.Empty(t, errs)
		assert.Equal(t, -70.0, sub.Amount)
	})

	t.Run("guard skipped when amount does not parse", func(t *testing.T) {
		_, errs := newForm("abc").Validate(balance)
		assert.Equal(t, Errors{FieldAmount: "Amount must be a number"}, errs)
	})
}

func TestModeTransitions(t *testing.T) {
	f := New()
	assert.IsType(t, CreateMode{}, f.Mode())
	assert.False(t, f.Editing())

	tx := entity.Transaction{
		ID:       "tx-9",
		Date:     "2024-02-01",
		Payee:    "Grocer",
		Category: "Food",
		Amount:   -12.5,
	}
	f.BeginEdit(tx)

	assert.True(t, f.Editing())
	assert.Equal(t, EditMode{ID: "tx-9"}, f.Mode())
	assert.Equal(t, "2024-02-01", f.Date)
	assert.Equal(t, "Grocer", f.Payee)
	assert.Equal(t, "Food", f.Category)
	assert.Equal(t, "-12.5", f.Amount)

	f.Reset()

	assert.IsType(t, CreateMode{}, f.Mode())
	assert.Empty(t, f.Date)
	assert.Empty(t, f.Payee)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Amount)
}
