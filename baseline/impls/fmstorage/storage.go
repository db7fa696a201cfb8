package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libparams/baseline"
	"github.com/sgostarter/libparams/policy"
)

func NewFMStorage(root string, storage stg.FileStorage) baseline.Storage {
	return NewFMStorageEx(root, storage, "baseline.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) baseline.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		recordStorage: mwf.NewMemWithFile[policy.Records, mwf.Serial, mwf.Lock](
			make(policy.Records), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	recordStorage *mwf.MemWithFile[policy.Records, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Load() (recs policy.Records, err error) {
	impl.recordStorage.Read(func(d policy.Records) {
		if len(d) == 0 {
			err = commerr.ErrNotFound

			return
		}

		recs = d.Clone()
	})

	return
}

func (impl *fmStorageImpl) Save(recs policy.Records) error {
	return impl.recordStorage.Change(func(_ policy.Records) (policy.Records, error) {
		return recs.Clone(), nil
	})
}
