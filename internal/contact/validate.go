package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// emailPattern is a syntactic check only: something, "@", something, ".",
// something, with no whitespace inside each part. It is searched for, not
// anchored, so surrounding text does not make the address invalid. Go's \S
// is ASCII-only, so the class spells out the Unicode separators, vertical
// tab and BOM that count as whitespace in the browser's regexp.
var emailPattern = regexp.MustCompile(`[^\s\x0B\p{Z}\x{FEFF}]+@[^\s\x0B\p{Z}\x{FEFF}]+\.[^\s\x0B\p{Z}\x{FEFF}]+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// tagKinds maps a failing validator tag onto the error taxonomy.
var tagKinds = map[string]ErrorKind{
	"notblank":   EmptyField,
	"looseemail": InvalidFormat,
}

// Validate checks every field of s and collects all failures. Each field
// reports at most one error; emptiness is checked before format.
func Validate(s Submission) Errors {
	errs := Errors{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct() only returns other errors for invalid input types.
		panic(err)
	}
	for _, fe := range verrs {
		f := Field(fe.Field())
		kind, ok := tagKinds[fe.Tag()]
		if !ok {
			kind = InvalidFormat
		}
		errs[f] = newFieldError(f, kind)
	}
	return errs
}
