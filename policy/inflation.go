package policy

import (
	"maps"
	"slices"
)

const (
	DefaultStartYear = 2013
	DefaultNumYears  = 12
)

var defaultInflationRates = map[int]float64{
	2013: 0.015, 2014: 0.020, 2015: 0.022, 2016: 0.020, 2017: 0.021,
	2018: 0.022, 2019: 0.023, 2020: 0.024, 2021: 0.024, 2022: 0.024,
	2023: 0.024, 2024: 0.024,
}

func DefaultInflationRate(year int) (float64, error) {
	rate, ok := defaultInflationRates[year]
	if !ok {
		return 0, rangeErrorf("no default inflation rate for %d", year)
	}

	return rate, nil
}

// DefaultInflationRates returns a copy of the built-in year -> rate table.
func DefaultInflationRates() map[int]float64 {
	return maps.Clone(defaultInflationRates)
}

// horizonRates lines rates up with the horizon, one per year starting at startYear.
// A nil map selects the built-in table.
func horizonRates(startYear, numYears int, rates map[int]float64) ([]float64, error) {
	if rates == nil {
		rates = defaultInflationRates
	} else {
		if len(rates) != numYears {
			return nil, configErrorf("len(inflation_rates)=%d != num_years=%d", len(rates), numYears)
		}

		if minYear := slices.Min(slices.Collect(maps.Keys(rates))); minYear != startYear {
			return nil, configErrorf("min(inflation_rates years)=%d != start_year=%d", minYear, startYear)
		}
	}

	if numYears > len(rates) {
		return nil, configErrorf("num_years=%d exceeds the %d inflation rates available", numYears, len(rates))
	}

	series := make([]float64, numYears)

	for idx := range series {
		rate, ok := rates[startYear+idx]
		if !ok {
			return nil, configErrorf("no inflation rate for %d", startYear+idx)
		}

		series[idx] = rate
	}

	return series, nil
}
