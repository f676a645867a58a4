package hashes

import (
	"fmt"
	"path/filepath"
	"plugin"
)

const (
	pluginBase   = "hashlib"
	pluginSymbol = "HashFuncArray"

	maxPlugins = 10
)

// LoadPlugins probes dir for hashlib<N>.so, N in [0, 10), and
// registers every entry the plugin exports as HashFuncArray []Entry.
// Missing files, unloadable objects and absent symbols are skipped;
// the sentinel-terminated layout of the C hash libraries is honoured,
// so an empty name ends the array early.
func (r *Registry) LoadPlugins(dir string) {
	for i := 0; i < maxPlugins; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.so", pluginBase, i))

		p, err := plugin.Open(path)
		if err != nil {
			r.log.Debugf("hash plugin %s not loaded: %v", path, err)
			continue
		}

		sym, err := p.Lookup(pluginSymbol)
		if err != nil {
			r.log.Debugf("hash plugin %s exports no %s", path, pluginSymbol)
			continue
		}

		entries, ok := sym.(*[]Entry)
		if !ok {
			r.log.Warnf("hash plugin %s: %s has type %T, want *[]Entry", path, pluginSymbol, sym)
			continue
		}

		for _, e := range *entries {
			if e.Name == "" {
				break
			}

			if err := r.Register(e); err != nil {
				r.log.Warnf("hash plugin %s: %v", path, err)
				continue
			}

			r.log.Infof("registered hash %q (digest %d bytes) from %s", e.Name, e.DigestLen, path)
		}
	}
}
