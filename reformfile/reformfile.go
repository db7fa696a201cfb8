package reformfile

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sgostarter/libparams/policy"
	"github.com/spf13/cast"
)

const policySection = "policy"

var lineComment = regexp.MustCompile(`//.*`)

// StripComments removes //-comments through the end of each line.
func StripComments(text string) string {
	return lineComment.ReplaceAllString(text, "")
}

// ReadFile parses the reform file at name.
func ReadFile(name string) (policy.Reform, error) {
	d, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return Parse(d)
}

// Parse reads reform text: JSON with optional //-comments whose "policy" object (or
// the whole document when that key is absent) maps each parameter to {"YEAR": values}.
func Parse(text []byte) (policy.Reform, error) {
	var doc map[string]any

	if err := json.Unmarshal([]byte(StripComments(string(text))), &doc); err != nil {
		return nil, fmt.Errorf("%w: reform text is not valid JSON: %v", policy.ErrConfig, err)
	}

	section := doc

	if raw, ok := doc[policySection]; ok {
		m, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: %q must be an object", policy.ErrConfig, policySection)
		}

		section = m
	}

	return Convert(section)
}

// Convert turns a parameter -> {"YEAR": values} layout into a year -> mods reform.
func Convert(section map[string]any) (policy.Reform, error) {
	reform := make(policy.Reform)

	for name, raw := range section {
		if !strings.HasPrefix(name, policy.NameMarker) {
			return nil, fmt.Errorf("%w: parameter %q must start with %q", policy.ErrConfig, name, policy.NameMarker)
		}

		byYear, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: parameter %s must map years to values", policy.ErrConfig, name)
		}

		for yearText, v := range byYear {
			year, err := cast.ToIntE(strings.TrimSpace(yearText))
			if err != nil || fmt.Sprint(year) != strings.TrimSpace(yearText) {
				return nil, fmt.Errorf("%w: parameter %s: year %q is not an integer", policy.ErrConfig, name, yearText)
			}

			if strings.HasSuffix(name, policy.CPISuffix) {
				if _, isBool := v.(bool); !isBool {
					return nil, fmt.Errorf("%w: %s for %d must be true or false", policy.ErrConfig, name, year)
				}
			}

			mods, ok := reform[year]
			if !ok {
				mods = policy.NewMods()
			}

			if err = mods.Set(name, v); err != nil {
				return nil, err
			}

			reform[year] = mods
		}
	}

	return reform, nil
}
