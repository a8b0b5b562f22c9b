package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

// Register installs the domain tags on gin's binding validator and makes
// error fields report their JSON names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

// RegisterOn installs the domain tags on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)

	rules := map[string]validator.Func{
		"playtype": func(fl validator.FieldLevel) bool {
			_, err := stats.ParsePlayType(fl.Field().String())
			return err == nil
		},
		"eligibility": func(fl validator.FieldLevel) bool {
			e := stats.Eligibility(fl.Field().String())
			return e == "" || e == stats.EligibilityOfficial || e == stats.EligibilityFriendly
		},
		"matchstate": func(fl validator.FieldLevel) bool {
			return stats.MatchState(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
