package yamlstorage

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libparams/baseline"
	"github.com/sgostarter/libparams/policy"
	"gopkg.in/yaml.v3"
)

func NewYAMLStorage(root, key string) baseline.Storage {
	if key == "" {
		key = "baseline.yaml"
	}

	return &yamlStorageImpl{
		root: root,
		key:  key,
	}
}

type yamlStorageImpl struct {
	root string
	key  string
}

func (stg *yamlStorageImpl) fileName() string {
	return path.Join(stg.root, stg.key)
}

func (stg *yamlStorageImpl) Load() (recs policy.Records, err error) {
	d, err := os.ReadFile(stg.fileName())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &recs)
	if err != nil {
		return
	}

	if len(recs) == 0 {
		err = commerr.ErrNotFound
	}

	return
}

func (stg *yamlStorageImpl) Save(recs policy.Records) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(recs)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileName(), d, 0600)

	return
}
