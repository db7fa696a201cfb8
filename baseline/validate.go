package baseline

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sgostarter/libparams/policy"
)

const nameRule = "startswith=_,min=2,endsnotwith=_cpi"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks every record's name and tagged fields, then parses the values so
// shape problems surface before a policy is built.
func Validate(recs policy.Records) error {
	if len(recs) == 0 {
		return fmt.Errorf("%w: no parameters", policy.ErrConfig)
	}

	names := make([]string, 0, len(recs))
	for name := range recs {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		rec := recs[name]

		if err := validate.Var(name, nameRule); err != nil {
			return fmt.Errorf("%w: parameter name %q: %v", policy.ErrConfig, name, err)
		}

		if rec == nil {
			return fmt.Errorf("%w: parameter %s is null", policy.ErrConfig, name)
		}

		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("%w: parameter %s: %v", policy.ErrConfig, name, err)
		}

		if _, err := rec.Definition(name); err != nil {
			return err
		}
	}

	return nil
}
