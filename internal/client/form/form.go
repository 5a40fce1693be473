// Package form implements the transaction entry form: its create/edit mode
// machine and the submit-time validation, including the overdraft guard.
package form

import (
	"strconv"
	"strings"

	"github.com/finchapp/finch/internal/domain/entity"
)

// Field identifies a form field in validation errors
type Field string

const (
	FieldDate     Field = "date"
	FieldPayee    Field = "payee"
	FieldCategory Field = "category"
	FieldAmount   Field = "amount"
)

// Errors maps fields to their validation messages. Validation reports every
// failing field at once, not just the first.
type Errors map[Field]string

// Mode is the form's tagged mode variant. A form is either creating a new
// transaction or editing an existing one; there is no nullable-ID middle
// ground.
type Mode interface {
	isMode()
}

// CreateMode is the default mode: no identifier bound
type CreateMode struct{}

func (CreateMode) isMode() {}

// EditMode binds the form to an existing transaction's identifier
type EditMode struct {
	ID string
}

func (EditMode) isMode() {}

// Form holds the raw field values as entered. Amount stays a string until
// validation parses it.
type Form struct {
	Date     string
	Payee    string
	Category string
	Amount   string

	mode Mode
}

// New creates an empty form in create mode
func New() *Form {
	return &Form{mode: CreateMode{}}
}

// Mode returns the current mode variant
func (f *Form) Mode() Mode {
	return f.mode
}

// Editing reports whether the form is bound to an existing transaction
func (f *Form) Editing() bool {
	_, ok := f.mode.(EditMode)
	return ok
}

// BeginEdit pre-populates the fields from an existing transaction and
// switches to edit mode.
func (f *Form) BeginEdit(tx entity.Transaction) {
	f.mode = EditMode{ID: tx.ID}
	f.Date = tx.Date
	f.Payee = tx.Payee
	f.Category = tx.Category
	f.Amount = strconv.FormatFloat(tx.Amount, 'f', -1, 64)
}

// Reset clears all fields and returns to create mode. Called on explicit
// cancel and after a successful submit.
func (f *Form) Reset() {
	*f = Form{mode: CreateMode{}}
}

// Submission is the validated payload ready to be sent to the server
type Submission struct {
	Date     string
	Payee    string
	Category string
	Amount   float64
}

// Validate checks every field against the current balance and returns either
// a submission or the full set of field errors. The overdraft guard only
// applies in create mode: a new expense may not push the balance below zero,
// but editing an existing transaction never re-checks balance sufficiency.
func (f *Form) Validate(balance float64) (Submission, Errors) {
	errs := make(Errors)

	if f.Date == "" {
		errs[FieldDate] = "Date is required"
	}
	if strings.TrimSpace(f.Payee) == "" {
		errs[FieldPayee] = "Payee is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		errs[FieldCategory] = "Category is required"
	}

	rawAmount := strings.TrimSpace(f.Amount)
	amount, parseErr := strconv.ParseFloat(rawAmount, 64)

	switch {
	case rawAmount == "":
		errs[FieldAmount] = "Amount is required"
	case parseErr != nil:
		errs[FieldAmount] = "Amount must be a number"
	case amount < 0 && -amount > balance && !f.Editing():
		errs[FieldAmount] = "Balance is too low for this transaction"
	}

	if len(errs) > 0 {
		return Submission{}, errs
	}

	return Submission{
		Date:     f.Date,
		Payee:    f.Payee,
		Category: f.Category,
		Amount:   amount,
	}, nil
}
