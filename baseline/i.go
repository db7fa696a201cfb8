package baseline

import "github.com/sgostarter/libparams/policy"

type Storage interface {
	Load() (policy.Records, error)
	Save(recs policy.Records) error
}
