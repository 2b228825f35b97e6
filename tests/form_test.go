package tests

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/vap/pkg/vap"
)

type signupForm struct {
	ID    string
	Name  string
	Email string
	Age   string
}

type account struct {
	ID    uuid.UUID
	Name  string
	Email string
	Age   int
}

// TestSignupFormAccumulatesEveryFieldError validates a form where several
// independent fields are broken at once and expects one error per broken
// field, reported in field order.
func TestSignupFormAccumulatesEveryFieldError(t *testing.T) {
	form := signupForm{
		ID:    "not-a-uuid",
		Name:  "   ",
		Email: "ann.example.com",
		Age:   "17",
	}

	res := validateSignup(form)

	assert.True(t, res.IsInvalid())
	errs := res.GetErrors()
	assert.Len(t, errs, 4)
	assert.Contains(t, errs[0], "id:")
	assert.Equal(t, "name: must not be blank", errs[1])
	assert.Equal(t, "email: must contain @", errs[2])
	assert.Equal(t, "age: must be between 18 and 130", errs[3])
}

func TestSignupFormHappyPath(t *testing.T) {
	id := uuid.New()
	form := signupForm{
		ID:    id.String(),
		Name:  "  Ann  ",
		Email: "ann@example.com",
		Age:   "30",
	}

	res := validateSignup(form)

	assert.True(t, res.IsValid())
	acc := res.Get()
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "Ann", acc.Name)
	assert.Equal(t, "ann@example.com", acc.Email)
	assert.Equal(t, 30, acc.Age)
}

// TestSignupBatch traverses a batch of forms and expects the errors of every
// broken form, in batch order, while a batch of good forms yields accounts.
func TestSignupBatch(t *testing.T) {
	good := signupForm{ID: uuid.NewString(), Name: "Bo", Email: "bo@example.com", Age: "44"}
	badAge := signupForm{ID: uuid.NewString(), Name: "Cat", Email: "cat@example.com", Age: "three"}
	badEmail := signupForm{ID: uuid.NewString(), Name: "Dee", Email: "dee.example.com", Age: "25"}

	res := vap.Traverse([]signupForm{good, badAge, badEmail}, validateSignup)

	assert.True(t, res.IsInvalid())
	errs := res.GetErrors()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0], "age:")
	assert.Contains(t, errs[1], "email:")

	accounts := vap.Traverse([]signupForm{good}, validateSignup)
	assert.True(t, accounts.IsValid())
	assert.Len(t, accounts.Get(), 1)
	assert.Equal(t, "Bo", accounts.Get()[0].Name)
}

// TestSignupReport folds the validation into a printable outcome, the usual
// last step before handing a result to a caller.
func TestSignupReport(t *testing.T) {
	bad := validateSignup(signupForm{ID: uuid.NewString(), Name: "", Email: "x@example.com", Age: "200"})

	report := vap.Fold(bad,
		func(errs []string) string { return fmt.Sprintf("rejected: %s", strings.Join(errs, "; ")) },
		func(a account) string { return fmt.Sprintf("welcome %s", a.Name) },
	)

	assert.Equal(t, "rejected: name: must not be blank; age: must be between 18 and 130", report)
}

// validateSignup checks all four fields independently and combines them into
// an account, accumulating one message per broken field.
func validateSignup(form signupForm) vap.Validation[string, account] {
	return vap.Apply4(
		vap.Combine4(
			vap.Combine3(
				vap.Combine(validateID(form.ID), validateName(form.Name)),
				validateEmail(form.Email)),
			validateAge(form.Age)),
		func(id uuid.UUID, name, email string, age int) account {
			return account{ID: id, Name: name, Email: email, Age: age}
		})
}

// validateID parses the raw field as a UUID.
func validateID(raw string) vap.Validation[string, uuid.UUID] {
	return vap.MapErrors(
		vap.FromError(uuid.Parse(raw)),
		func(err error) string { return "id: " + err.Error() },
	)
}

// validateName requires a non-blank name and trims it.
func validateName(raw string) vap.Validation[string, string] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return vap.Invalid[string, string]("name: must not be blank")
	}
	return vap.Valid[string](trimmed)
}

// validateEmail keeps the check deliberately dumb; the point here is error
// accumulation, not address grammar.
func validateEmail(raw string) vap.Validation[string, string] {
	if !strings.Contains(raw, "@") {
		return vap.Invalid[string, string]("email: must contain @")
	}
	return vap.Valid[string](raw)
}

// validateAge parses and range-checks the raw age field.
func validateAge(raw string) vap.Validation[string, int] {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return vap.Invalid[string, int]("age: not a number: " + raw)
	}
	if n < 18 || n > 130 {
		return vap.Invalid[string, int]("age: must be between 18 and 130")
	}
	return vap.Valid[string](n)
}
