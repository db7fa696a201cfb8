package policy

import (
	"maps"

	"github.com/sgostarter/i/l"
)

type Options struct {
	startYear      int
	numYears       int
	inflationRates map[int]float64
	logger         l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		startYear: DefaultStartYear,
		numYears:  DefaultNumYears,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func StartYearOption(year int) Option {
	return func(o *Options) {
		o.startYear = year
	}
}

func NumYearsOption(n int) Option {
	return func(o *Options) {
		o.numYears = n
	}
}

// InflationRatesOption replaces the built-in rate table; it must hold exactly one
// rate per horizon year.
func InflationRatesOption(rates map[int]float64) Option {
	return func(o *Options) {
		o.inflationRates = maps.Clone(rates)
	}
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// HorizonOf resolves the horizon the options select.
func HorizonOf(opts ...Option) (startYear, numYears int) {
	o := optionNew(opts...)

	return o.startYear, o.numYears
}
