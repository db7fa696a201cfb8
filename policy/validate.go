package policy

import (
	"strings"
)

func validateHorizon(startYear, numYears int) error {
	if numYears < 1 {
		return configErrorf("num_years=%d < 1", numYears)
	}

	if startYear <= 0 {
		return configErrorf("start_year=%d must be positive", startYear)
	}

	return nil
}

func (impl *Policy) validateYear(year int) error {
	if year < impl.startYear || year > impl.EndYear() {
		return rangeErrorf("year %d must be in [%d,%d]", year, impl.startYear, impl.EndYear())
	}

	return nil
}

func validateDefinition(name string, def *Definition, startYear int) error {
	if def == nil {
		return configErrorf("parameter %s has no definition", name)
	}

	if !strings.HasPrefix(name, NameMarker) || len(name) == len(NameMarker) {
		return configErrorf("parameter name %q must start with %q", name, NameMarker)
	}

	if strings.HasSuffix(name, CPISuffix) {
		return configErrorf("parameter name %q must not end with %q", name, CPISuffix)
	}

	if def.StartYear != 0 && def.StartYear != startYear {
		return configErrorf("parameter %s starts in %d, not at horizon start %d", name, def.StartYear, startYear)
	}

	if def.Dim < 0 {
		return configErrorf("parameter %s has negative dimension %d", name, def.Dim)
	}

	if n := def.Axis.Len(); n > 0 && n != def.Dim {
		return shapeErrorf("parameter %s: axis %s needs width %d, got %d", name, def.Axis, n, def.Dim)
	}

	return validateRows(name, def.Values, max(def.Dim, 1))
}

func validateRows(name string, rows Series, width int) error {
	if len(rows) == 0 {
		return configErrorf("parameter %s has no values", name)
	}

	for idx, row := range rows {
		if len(row) != width {
			return shapeErrorf("parameter %s value %d has width %d, expected %d", name, idx, len(row), width)
		}
	}

	return nil
}

// validateYearMods checks a single YEAR:MODS patch against the cursor.
func (impl *Policy) validateYearMods(yearMods Reform) (year int, mods Mods, err error) {
	if len(yearMods) != 1 {
		err = configErrorf("year_mods must contain a single YEAR:MODS pair, got %d", len(yearMods))

		return
	}

	for y, m := range yearMods {
		year, mods = y, m
	}

	if year != impl.currentYear {
		err = configErrorf("YEAR=%d in year_mods is not equal to current_year=%d", year, impl.currentYear)
	}

	return
}

// ValidateReform checks every year of a reform without applying anything: years in
// the horizon, known parameter names, value widths and lengths.
func (impl *Policy) ValidateReform(reform Reform) error {
	for _, year := range reform.Years() {
		if err := impl.validateYear(year); err != nil {
			return err
		}

		if _, err := impl.preparePatches(year, reform[year]); err != nil {
			return err
		}
	}

	return nil
}
