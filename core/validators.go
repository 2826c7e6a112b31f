package core

import (
	"reflect"
	"strings"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	validate      *validator.Validate
	translator    ut.Translator
	validatorInit sync.Once

	// custom validation tags & texts
	dateKeywordTag  = "datekw"
	dateKeywordText = "{0} must be one of numeric, 2-digit, long, short or narrow"
	dateKeywords    = map[string]bool{"numeric": true, "2-digit": true, "long": true, "short": true, "narrow": true}

	requiredTag  = "required"
	requiredText = "this field is required"
)

// Validator returns the shared validator with our custom validations and their english messages registered.
// Translations can only be added once per translator, hence a single instance.
func Validator() (*validator.Validate, ut.Translator) {
	validatorInit.Do(func() {
		validate = validator.New()
		translator = FindTranslator(DefaultLocale)
		InitValidators(validate, translator)
	})
	return validate, translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(dateKeywordTag, dateKeywordValidation)
	RegisterCustomTranslation(validate, translator, dateKeywordTag, dateKeywordText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidateStruct runs struct validation and converts any failure into a *ValidationError
// holding one translated FieldError per invalid field.
func ValidateStruct(s interface{}) error {
	validate, translator := Validator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validating struct")
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(translator)})
	}
	return NewValidationError(errors.New("invalid input"), flds...)
}

// Custom Global Validators

// dateKeywordValidation only allows the date component keywords understood by the date formatter.
func dateKeywordValidation(fl validator.FieldLevel) bool {
	return dateKeywords[fl.Field().String()]
}
