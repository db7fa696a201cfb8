package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libparams/baseline"
	"github.com/sgostarter/libparams/baseline/impls/fmstorage"
	"github.com/sgostarter/libparams/baseline/impls/redisimpls"
	"github.com/sgostarter/libparams/baseline/impls/yamlstorage"
	"github.com/sgostarter/libparams/export"
	"github.com/sgostarter/libparams/policy"
	"github.com/sgostarter/libparams/reformfile"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()

	cfg, err := LoadConfig()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("load config failed")
	}

	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("paramtool failed")
	}
}

func newStorage(cfg *Config, logger l.Wrapper) (baseline.Storage, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		return redisimpls.NewRedisStorage(cfg.RedisKey, redis.NewClient(opts), logger), nil
	}

	if cfg.Baseline == "" {
		return nil, nil
	}

	dir, file := filepath.Split(cfg.Baseline)

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return yamlstorage.NewYAMLStorage(dir, file), nil
	case ".json":
		return fmstorage.NewFMStorageEx(dir, nil, file, true), nil
	default:
		return nil, fmt.Errorf("%w: unsupported baseline file %s", policy.ErrConfig, cfg.Baseline)
	}
}

func run(cfg *Config, stdout io.Writer, logger l.Wrapper) error {
	storage, err := newStorage(cfg, logger)
	if err != nil {
		return err
	}

	policyLogger := l.NewNopLoggerWrapper()
	if cfg.Debug {
		policyLogger = logger
	}

	opts := []policy.Option{
		policy.StartYearOption(cfg.StartYear),
		policy.NumYearsOption(cfg.NumYears),
		policy.LoggerOption(policyLogger),
	}

	p, err := baseline.NewCatalog(storage, logger).Policy(opts...)
	if err != nil {
		return err
	}

	if cfg.Reform != "" {
		reform, e := reformfile.ReadFile(cfg.Reform)
		if e != nil {
			return e
		}

		base := p.Clone()

		if e = p.ImplementReform(reform); e != nil {
			return e
		}

		diffs, e := policy.Compare(base, p)
		if e != nil {
			return e
		}

		for _, d := range diffs {
			logger.WithFields(l.StringField("name", d.Name), l.IntField("firstYear", d.FirstYear),
				l.IntField("changedYears", d.ChangedYears),
				l.StringField("meanChange", fmt.Sprintf("%.2f", d.MeanChange)),
				l.StringField("indexingFlips", fmt.Sprint(d.IndexingFlips))).Info("reform changes parameter")
		}
	}

	tbl, err := export.NewTable(p, cfg.Names...)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return export.WriteCSV(stdout, tbl)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}

	defer f.Close()

	if strings.EqualFold(filepath.Ext(cfg.Output), ".xlsx") {
		err = export.WriteXLSX(f, tbl, "")
	} else {
		err = export.WriteCSV(f, tbl)
	}

	if err != nil {
		return err
	}

	return f.Close()
}
