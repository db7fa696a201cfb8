package baseline

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libparams/policy"
)

const (
	recordsCacheKey = "records"
	cacheExpiration = 10 * time.Minute
)

// Catalog loads baseline records from a Storage and memoizes them together with
// their re-based variants.
type Catalog struct {
	logger  l.Wrapper
	storage Storage
	cached  *cache.Cache
}

// NewCatalog wraps storage; nil selects the embedded current-law records.
func NewCatalog(storage Storage, logger l.Wrapper) *Catalog {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = NewEmbeddedStorage()
	}

	return &Catalog{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "catalogImpl")),
		storage: storage,
		cached:  cache.New(cacheExpiration, 2*cacheExpiration),
	}
}

func (impl *Catalog) genCachedKey(firstValueYear int) string {
	if firstValueYear == 0 {
		return recordsCacheKey
	}

	return "rebased:" + strconv.Itoa(firstValueYear)
}

func (impl *Catalog) records() (policy.Records, error) {
	if i, ok := impl.cached.Get(recordsCacheKey); ok {
		recs, _ := i.(policy.Records)

		return recs, nil
	}

	recs, err := impl.storage.Load()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("load baseline failed")

		return nil, err
	}

	if err = Validate(recs); err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("baseline rejected")

		return nil, err
	}

	impl.cached.SetDefault(recordsCacheKey, recs)

	impl.logger.WithFields(l.IntField("parameters", len(recs))).Debug("baseline loaded")

	return recs, nil
}

// Records returns a copy of the stored baseline.
func (impl *Catalog) Records() (policy.Records, error) {
	recs, err := impl.records()
	if err != nil {
		return nil, err
	}

	return recs.Clone(), nil
}

// DefaultData returns the baseline re-based so firstValueYear is the first value of
// every parameter; 0 returns the baseline unchanged.
func (impl *Catalog) DefaultData(firstValueYear int) (policy.Records, error) {
	if firstValueYear == 0 {
		return impl.Records()
	}

	key := impl.genCachedKey(firstValueYear)

	if i, ok := impl.cached.Get(key); ok {
		recs, _ := i.(policy.Records)

		return recs.Clone(), nil
	}

	recs, err := impl.records()
	if err != nil {
		return nil, err
	}

	rebased, err := policy.Rebase(recs, firstValueYear)
	if err != nil {
		return nil, err
	}

	impl.cached.SetDefault(key, rebased)

	return rebased.Clone(), nil
}

// Policy builds a policy from the baseline, re-based to the horizon start year when
// any record starts elsewhere. Known values past the end of the horizon are dropped.
func (impl *Catalog) Policy(opts ...policy.Option) (*policy.Policy, error) {
	startYear, numYears := policy.HorizonOf(opts...)

	recs, err := impl.Records()
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		if rec.FirstYear() != startYear {
			recs, err = impl.DefaultData(startYear)
			if err != nil {
				return nil, err
			}

			break
		}
	}

	for name, rec := range recs {
		if numYears > 0 && len(rec.Value) > numYears {
			impl.logger.WithFields(l.StringField("name", name), l.IntField("known", len(rec.Value)),
				l.IntField("numYears", numYears)).Debug("clip known values to horizon")

			rec.Value = rec.Value[:numYears]
			if len(rec.RowLabel) > numYears {
				rec.RowLabel = rec.RowLabel[:numYears]
			}
		}
	}

	return policy.NewFromRecords(recs, opts...)
}

// Save writes recs through the storage and drops every memoized view.
func (impl *Catalog) Save(recs policy.Records) error {
	if err := Validate(recs); err != nil {
		return err
	}

	if err := impl.storage.Save(recs); err != nil {
		return err
	}

	impl.cached.Flush()

	return nil
}

func (impl *Catalog) Invalidate() {
	impl.cached.Flush()
}
