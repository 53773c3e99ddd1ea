package engine

import (
	"io/fs"
	"os"
	"time"
)

// fakeFS implements fsops.FS from in-memory maps so tests can control
// directory listing order and inject read failures.
type fakeFS struct {
	// dirs maps a directory path to its entries, returned exactly in the
	// given order (os.ReadDir would sort; this fake deliberately does not).
	dirs map[string][]os.DirEntry

	// files maps a file path to its content.
	files map[string][]byte

	// readErrs makes ReadPrefix/ReadFile fail for specific paths.
	readErrs map[string]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		dirs:     make(map[string][]os.DirEntry),
		files:    make(map[string][]byte),
		readErrs: make(map[string]error),
	}
}

func (f *fakeFS) Stat(path string) (os.FileInfo, error) {
	if _, ok := f.dirs[path]; ok {
		return fakeFileInfo{name: path, dir: true}, nil
	}
	if content, ok := f.files[path]; ok {
		return fakeFileInfo{name: path, size: int64(len(content))}, nil
	}
	return nil, os.ErrNotExist
}

func (f *fakeFS) ReadDir(path string) ([]os.DirEntry, error) {
	entries, ok := f.dirs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entries, nil
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	if err, ok := f.readErrs[path]; ok {
		return nil, err
	}
	content, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (f *fakeFS) ReadPrefix(path string, n int) ([]byte, error) {
	content, err := f.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(content) > n {
		content = content[:n]
	}
	return content, nil
}

type fakeDirEntry struct {
	name string
	dir  bool
	mode fs.FileMode
}

func (d fakeDirEntry) Name() string      { return d.name }
func (d fakeDirEntry) IsDir() bool       { return d.dir }
func (d fakeDirEntry) Type() fs.FileMode { return d.mode }
func (d fakeDirEntry) Info() (fs.FileInfo, error) {
	return fakeFileInfo{name: d.name, dir: d.dir}, nil
}

func fileEntryNamed(name string) fakeDirEntry {
	return fakeDirEntry{name: name}
}

func dirEntryNamed(name string) fakeDirEntry {
	return fakeDirEntry{name: name, dir: true, mode: fs.ModeDir}
}

func symlinkEntryNamed(name string) fakeDirEntry {
	return fakeDirEntry{name: name, mode: fs.ModeSymlink}
}

type fakeFileInfo struct {
	name string
	dir  bool
	size int64
}

func (i fakeFileInfo) Name() string { return i.name }
func (i fakeFileInfo) Size() int64  { return i.size }
func (i fakeFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return i.dir }
func (i fakeFileInfo) Sys() any           { return nil }
