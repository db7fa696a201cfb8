package redisimpls

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libparams/baseline"
	"github.com/sgostarter/libparams/policy"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) baseline.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisBaselineStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorage) recordsKey() string {
	return impl.preKey + ":baseline:records"
}

func (impl *redisStorage) Load() (recs policy.Records, err error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.recordsKey()).Result()
	if err != nil {
		return
	}

	if len(m) == 0 {
		err = commerr.ErrNotFound

		return
	}

	recs = make(policy.Records, len(m))

	for name, v := range m {
		var rec policy.Record

		if err = json.Unmarshal([]byte(v), &rec); err != nil {
			impl.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("bad record")

			return nil, err
		}

		recs[name] = &rec
	}

	return
}

func (impl *redisStorage) Save(recs policy.Records) error {
	fields := make(map[string]interface{}, len(recs))

	for name, rec := range recs {
		d, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		fields[name] = string(d)
	}

	ctx := context.Background()

	_, err := impl.redisCli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, impl.recordsKey())

		if len(fields) > 0 {
			pipe.HSet(ctx, impl.recordsKey(), fields)
		}

		return nil
	})

	return err
}
