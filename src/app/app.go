// Package app wires the engine together and exposes the three
// top-level operations: generate, search and crack.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/glaciate/snowflake/src"
	"github.com/glaciate/snowflake/src/cracker"
	"github.com/glaciate/snowflake/src/generator"
	"github.com/glaciate/snowflake/src/hashes"
	"github.com/glaciate/snowflake/src/pkg/utils"
	"github.com/glaciate/snowflake/src/table"
)

type App struct {
	env      envVars
	fs       afero.Fs
	log      src.Logger
	registry *hashes.Registry
}

func New() *App {
	env := mustLoadEnv()

	var log src.Logger
	if env.Environment == EnvDev {
		log = utils.Must(zap.NewDevelopment()).Sugar()
	} else {
		log = utils.Must(zap.NewProduction()).Sugar()
	}

	registry := hashes.NewRegistry(log)
	registry.LoadPlugins(env.PluginDir)

	return newApp(env, afero.NewOsFs(), log, registry)
}

func newApp(env envVars, fs afero.Fs, log src.Logger, registry *hashes.Registry) *App {
	return &App{env: env, fs: fs, log: log, registry: registry}
}

func (a *App) Close() {
	_ = a.log.Sync()
}

// Generate precomputes tableCount rainbow tables for hashName, indices
// 0..tableCount-1, each sorted by endpoint before the next one starts.
func (a *App) Generate(chainNum, chainLen, tableCount uint32, hashName string) error {
	fn, _, err := a.registry.Resolve(hashName)
	if err != nil {
		return err
	}

	run := uuid.NewString()
	pool := generator.NewPool(a.env.Workers, a.log)

	a.log.Infof(
		"run %s: generating %d tables (%d chains x %d) for %s",
		run, tableCount, chainNum, chainLen, hashName,
	)

	for idx := uint32(0); idx < tableCount; idx++ {
		path := filepath.Join(a.env.TableDir, table.FormatName(hashName, chainNum, chainLen, idx))
		started := time.Now()

		w, err := table.NewWriter(a.fs, path)
		if err != nil {
			return err
		}

		if err := pool.Generate(chainNum, chainLen, fn, w); err != nil {
			_ = w.Close()
			return err
		}

		if err := w.Close(); err != nil {
			return err
		}

		if err := a.sortTable(path); err != nil {
			return err
		}

		a.log.Infof("run %s: table %s ready in %s", run, path, time.Since(started))
	}

	return nil
}

func (a *App) sortTable(path string) error {
	t, err := table.OpenRW(path)
	if err != nil {
		return err
	}

	table.Sort(t.Chains)

	return t.Close()
}

// Search walks the rainbow table at tablePath for the seed behind
// target. Table parameters come from the file name; the record count
// comes from the file itself.
func (a *App) Search(tablePath string, target []byte) (uint32, bool, error) {
	hashName, chainNum, chainLen, err := table.ParseName(tablePath)
	if err != nil {
		return 0, false, err
	}

	fn, digestLen, err := a.registry.Resolve(hashName)
	if err != nil {
		return 0, false, err
	}

	if len(target) != digestLen {
		return 0, false, fmt.Errorf(
			"target digest is %d bytes, %s digests are %d",
			len(target), hashName, digestLen,
		)
	}

	t, err := table.Open(tablePath)
	if err != nil {
		return 0, false, err
	}

	if n := uint32(len(t.Chains)); n != chainNum {
		a.log.Warnf("table %s: name promises %d chains, file holds %d", tablePath, chainNum, n)
	}

	run := uuid.NewString()
	a.log.Infof(
		"run %s: searching %s (%d chains x %d) for %s",
		run, tablePath, len(t.Chains), chainLen, hashName,
	)

	started := time.Now()
	seed, found := cracker.Lookup(t.Chains, chainLen, fn, target)
	a.log.Infof("run %s: searched %s in %s (found=%t)", run, tablePath, time.Since(started), found)

	if err := t.Close(); err != nil {
		return 0, false, err
	}

	return seed, found, nil
}

// Crack brute-forces the full 32-bit seed space for target.
func (a *App) Crack(hashName string, target []byte) (uint32, bool, error) {
	fn, digestLen, err := a.registry.Resolve(hashName)
	if err != nil {
		return 0, false, err
	}

	if len(target) != digestLen {
		return 0, false, fmt.Errorf(
			"target digest is %d bytes, %s digests are %d",
			len(target), hashName, digestLen,
		)
	}

	run := uuid.NewString()
	a.log.Infof("run %s: exhaustive search over the %s seed space", run, hashName)

	started := time.Now()
	seed, found, err := cracker.Exhaustive(fn, target, a.env.Workers)
	if err != nil {
		return 0, false, err
	}

	a.log.Infof("run %s: exhausted in %s (found=%t)", run, time.Since(started), found)

	return seed, found, nil
}
