package baseline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libparams/policy"
)

//go:embed current_law_policy.json
var currentLawJSON []byte

var (
	defaultOnce    sync.Once
	defaultRecords policy.Records
	defaultErr     error
)

// Parse decodes a current-law parameter document: stored name -> record.
func Parse(d []byte) (recs policy.Records, err error) {
	err = json.Unmarshal(d, &recs)
	if err != nil {
		err = fmt.Errorf("%w: %v", policy.ErrConfig, err)

		return
	}

	err = Validate(recs)

	return
}

// Default returns a copy of the embedded current-law records.
func Default() (policy.Records, error) {
	defaultOnce.Do(func() {
		defaultRecords, defaultErr = Parse(currentLawJSON)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}

	return defaultRecords.Clone(), nil
}

// NewEmbeddedStorage serves the embedded current-law records; it is read only.
func NewEmbeddedStorage() Storage {
	return &embeddedStorage{}
}

type embeddedStorage struct{}

func (impl *embeddedStorage) Load() (policy.Records, error) {
	return Default()
}

func (impl *embeddedStorage) Save(_ policy.Records) error {
	return commerr.ErrPermissionDenied
}
