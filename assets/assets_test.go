package assets

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlay(t *testing.T, files map[string]string) *ofs.Overlay {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		fn := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
		require.NoError(t, ioutil.WriteFile(fn, []byte(data), 0644))
	}
	var ovl ofs.Overlay
	require.NoError(t, ovl.Add(false, dir))
	return &ovl
}

func TestPreloadAndFile(t *testing.T) {
	fs := overlay(t, map[string]string{
		"shaders/point.vert": "vertex",
		"shaders/point.frag": "fragment",
	})
	m := NewManager(fs, FilePath("shaders"), Workers(2))
	defer m.Close()

	m.Preload("point.vert", "point.frag", "point.vert")
	require.NoError(t, m.Wait())
	assert.Equal(t, 0, m.QueueSize())

	data, err := m.File("point.vert")
	require.NoError(t, err)
	assert.Equal(t, "vertex", string(data))
	data, err = m.File("point.frag")
	require.NoError(t, err)
	assert.Equal(t, "fragment", string(data))
	assert.NoError(t, m.Errors())
}

func TestFileOnDemand(t *testing.T) {
	fs := overlay(t, map[string]string{"a.txt": "hello"})
	m := NewManager(fs)
	defer m.Close()

	data, err := m.File("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestMissingFile(t *testing.T) {
	fs := overlay(t, map[string]string{"a.txt": "hello"})
	m := NewManager(fs, FilePath("res"))
	defer m.Close()

	m.Preload("nope.vert")
	err := m.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "res/nope.vert")

	_, err = m.File("nope.vert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "res/nope.vert")

	// failed files are not retried
	m.Preload("nope.vert")
	assert.Equal(t, 0, m.QueueSize())
}

func TestConcurrentFile(t *testing.T) {
	files := map[string]string{}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, n := range names {
		files[n] = n + n
	}
	m := NewManager(overlay(t, files), Workers(3))
	defer m.Close()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range names {
				data, err := m.File(n)
				assert.NoError(t, err)
				assert.Equal(t, n+n, string(data))
			}
		}()
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	fs := overlay(t, map[string]string{"a": "1", "b": "2"})
	m := NewManager(fs)
	m.Preload("a")
	m.Close()
	m.Close()

	data, err := m.File("a")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))

	_, err = m.File("b")
	require.Error(t, err)
	assert.Equal(t, errClosed, errors.Cause(err))
}

func TestErrorList(t *testing.T) {
	e := errorList{
		"b": errors.New("two"),
		"a": errors.New("one"),
	}
	assert.Equal(t, "a: one\nb: two", e.Error())
}
