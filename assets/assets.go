// Package assets loads files asynchronously from an ofs.FileSystem and
// caches their contents.
//
// Typical use is to preload every file at startup, wait for the loader, and
// then fetch contents by name:
//
//	m := assets.NewManager(&ovl, assets.FilePath("shaders"))
//	defer m.Close()
//	m.Preload("point.vert", "point.frag")
//	if err := m.Wait(); err != nil {
//		...
//	}
//	src, _ := m.File("point.vert")
//
package assets

import (
	"io/ioutil"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

var (
	errMissingAsset = errors.New("asset not found")
	errClosed       = errors.New("asset manager closed")
)

type errorList map[string]error

func (e errorList) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(e[k].Error())
	}
	return sb.String()
}

// Option configures a Manager.
//
type Option interface {
	set(*config)
}

type config struct {
	filePath string
	workers  int
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// FilePath returns an Option that sets the directory relative to which file
// names are resolved.
//
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

// Workers returns an Option that sets the number of loader goroutines.
// Values less than 1 are ignored.
//
func Workers(n int) Option {
	return cfn(func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	})
}

// A Manager manages asynchronous loading and caching of files.
//
// All methods are safe for concurrent use.
//
type Manager struct {
	fs      ofs.FileSystem
	cfg     config
	m       sync.Mutex
	cond    *sync.Cond
	errs    errorList
	assets  map[string][]byte
	pending map[string]struct{}
	cs      chan string
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// NewManager returns a new Manager reading files from fs. Close must be
// called to release the loader goroutines.
//
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	cfg := config{workers: 4}
	for _, o := range options {
		o.set(&cfg)
	}
	m := &Manager{
		fs:      fs,
		cfg:     cfg,
		errs:    make(errorList),
		assets:  make(map[string][]byte),
		pending: make(map[string]struct{}),
		cs:      make(chan string, 256),
		done:    make(chan struct{}),
	}
	m.cond = sync.NewCond(&m.m)
	m.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go func() {
			defer m.wg.Done()
			for {
				select {
				case name := <-m.cs:
					m.load(name)
				case <-m.done:
					return
				}
			}
		}()
	}
	return m
}

func (m *Manager) load(name string) {
	data, err := m.read(name)
	m.m.Lock()
	if err != nil {
		m.errs[name] = err
	} else {
		m.assets[name] = data
	}
	delete(m.pending, name)
	m.cond.Broadcast()
	m.m.Unlock()
}

func (m *Manager) read(name string) ([]byte, error) {
	r, err := m.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// Preload queues the named files for loading. Files already loaded, pending,
// or that failed to load are skipped.
//
func (m *Manager) Preload(names ...string) {
	for _, name := range names {
		name = path.Join(m.cfg.filePath, name)
		m.m.Lock()
		if !m.loadStartNoLock(name) {
			m.m.Unlock()
			continue
		}
		m.m.Unlock()
		m.cs <- name
	}
}

func (m *Manager) loadStartNoLock(name string) bool {
	if _, ok := m.assets[name]; ok {
		return false
	}
	if _, ok := m.pending[name]; ok {
		return false
	}
	if _, ok := m.errs[name]; ok {
		return false
	}
	if m.closed {
		m.errs[name] = errClosed
		return false
	}
	m.pending[name] = struct{}{}
	return true
}

// File returns the contents of the named file, waiting for it to load if
// needed. Files that were not preloaded are loaded on demand.
//
func (m *Manager) File(name string) ([]byte, error) {
	m.Preload(name)
	name = path.Join(m.cfg.filePath, name)
	m.m.Lock()
	defer m.m.Unlock()
	for {
		if data, ok := m.assets[name]; ok {
			return data, nil
		}
		if _, ok := m.pending[name]; !ok {
			return nil, m.errForAssetNoLock(name)
		}
		m.cond.Wait()
	}
}

func (m *Manager) errForAssetNoLock(name string) error {
	if err, ok := m.errs[name]; ok {
		return errors.Wrap(err, name)
	}
	return errors.Wrap(errMissingAsset, name)
}

// Wait waits for all pending files to load and returns the load errors so
// far, if any.
//
func (m *Manager) Wait() error {
	m.m.Lock()
	defer m.m.Unlock()
	for len(m.pending) > 0 {
		m.cond.Wait()
	}
	return m.errorsNoLock()
}

// Errors returns the load errors so far, one line per file, or nil.
func (m *Manager) Errors() error {
	m.m.Lock()
	defer m.m.Unlock()
	return m.errorsNoLock()
}

func (m *Manager) errorsNoLock() error {
	if len(m.errs) == 0 {
		return nil
	}
	errs := make(errorList, len(m.errs))
	for k, v := range m.errs {
		errs[k] = v
	}
	return errs
}

// QueueSize returns the number of files waiting to be loaded.
func (m *Manager) QueueSize() int {
	m.m.Lock()
	s := len(m.pending)
	m.m.Unlock()
	return s
}

// Close waits for pending loads and stops the loader goroutines. Cached
// contents remain available; files requested after Close fail to load.
//
func (m *Manager) Close() {
	m.m.Lock()
	if m.closed {
		m.m.Unlock()
		return
	}
	m.closed = true
	for len(m.pending) > 0 {
		m.cond.Wait()
	}
	m.m.Unlock()
	close(m.done)
	m.wg.Wait()
}
