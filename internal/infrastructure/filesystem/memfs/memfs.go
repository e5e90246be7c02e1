// Package memfs はテスト用のインメモリファイルシステムを提供します
package memfs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"
	"unicode/utf16"

	"StartupDelete/internal/domain/model"
)

// Op は失敗を注入できるファイルシステム操作の種類です
type Op int

const (
	OpStat Op = iota
	OpReadDir
	OpClearReadOnly
	OpRemoveFile
	OpRemoveDir
)

type node struct {
	dir  bool
	mode fs.FileMode
}

// FS はパスをキーにしたインメモリのファイルシステムです。
// ゼロ値は使用できないため New で作成してください
type FS struct {
	mu        sync.Mutex
	nodes     map[string]*node
	failures  map[Op]map[string]error
	mutations int
}

// New は空の FS を作成します
func New() *FS {
	return &FS{
		nodes:    map[string]*node{},
		failures: map[Op]map[string]error{},
	}
}

// MkdirAll はディレクトリを親ディレクトリごと作成します
func (m *FS) MkdirAll(path string, perm fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(filepath.Clean(path), perm)
}

func (m *FS) mkdirAll(path string, perm fs.FileMode) {
	if n, ok := m.nodes[path]; ok && n.dir {
		return
	}
	if parent := filepath.Dir(path); parent != path {
		m.mkdirAll(parent, 0o755)
	}
	m.nodes[path] = &node{dir: true, mode: fs.ModeDir | perm}
}

// WriteFile はファイルを作成します。親ディレクトリは自動で作成されます
func (m *FS) WriteFile(path string, perm fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path), 0o755)
	m.nodes[path] = &node{mode: perm}
}

// Chmod はパーミッションを変更します
func (m *FS) Chmod(path string, perm fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.nodes[filepath.Clean(path)]; ok {
		n.mode = n.mode&fs.ModeType | perm
	}
}

// Fail は指定したパスに対する操作が err で失敗するよう設定します
func (m *FS) Fail(op Op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures[op] == nil {
		m.failures[op] = map[string]error{}
	}
	m.failures[op][filepath.Clean(path)] = err
}

// Exists はパスが存在するかどうかを返します
func (m *FS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.nodes[filepath.Clean(path)]
	return ok
}

// Children はディレクトリ直下の要素名を名前順で返します
func (m *FS) Children(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.children(filepath.Clean(path))
}

// Mutations はこれまでに成功した変更操作の回数を返します
func (m *FS) Mutations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations
}

func (m *FS) children(path string) []string {
	var names []string
	for p := range m.nodes {
		if p != path && filepath.Dir(p) == path {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

func (m *FS) injected(op Op, path string) error {
	return m.failures[op][path]
}

func (m *FS) entry(path string, n *node) model.DirectoryEntry {
	return model.NewDirectoryEntry(fileInfo{name: filepath.Base(path), mode: n.mode})
}

// Stat はパスの属性を返します
func (m *FS) Stat(path string) (model.DirectoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.injected(OpStat, path); err != nil {
		return model.DirectoryEntry{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	n, ok := m.nodes[path]
	if !ok {
		return model.DirectoryEntry{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return m.entry(path, n), nil
}

// ReadDir はディレクトリ直下のエントリを返します
func (m *FS) ReadDir(path string) ([]model.DirectoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.injected(OpReadDir, path); err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: err}
	}
	n, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	if !n.dir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrInvalid}
	}
	var entries []model.DirectoryEntry
	for _, name := range m.children(path) {
		child := filepath.Join(path, name)
		entries = append(entries, m.entry(child, m.nodes[child]))
	}
	return entries, nil
}

// ClearReadOnly は所有者の書き込み権限を付与します
func (m *FS) ClearReadOnly(path string, _ model.DirectoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.injected(OpClearReadOnly, path); err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}
	n, ok := m.nodes[path]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: path, Err: fs.ErrNotExist}
	}
	n.mode |= 0o200
	m.mutations++
	return nil
}

// RemoveFile はファイルを削除します。読み取り専用のファイルは削除できません
func (m *FS) RemoveFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.injected(OpRemoveFile, path); err != nil {
		return &fs.PathError{Op: "remove", Path: path, Err: err}
	}
	n, ok := m.nodes[path]
	switch {
	case !ok:
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	case n.dir:
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrInvalid}
	case n.mode.Perm()&0o200 == 0:
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrPermission}
	}
	delete(m.nodes, path)
	m.mutations++
	return nil
}

// RemoveDir は空のディレクトリを削除します
func (m *FS) RemoveDir(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.injected(OpRemoveDir, path); err != nil {
		return &fs.PathError{Op: "rmdir", Path: path, Err: err}
	}
	n, ok := m.nodes[path]
	switch {
	case !ok:
		return &fs.PathError{Op: "rmdir", Path: path, Err: fs.ErrNotExist}
	case !n.dir:
		return &fs.PathError{Op: "rmdir", Path: path, Err: fs.ErrInvalid}
	case n.mode.Perm()&0o200 == 0:
		return &fs.PathError{Op: "rmdir", Path: path, Err: fs.ErrPermission}
	case len(m.children(path)) > 0:
		return &fs.PathError{Op: "rmdir", Path: path, Err: errNotEmpty}
	}
	delete(m.nodes, path)
	m.mutations++
	return nil
}

// PathLength はパスの長さを UTF-16 のコード単位数で返します
func (m *FS) PathLength(path string) int {
	return len(utf16.Encode([]rune(path)))
}

type memError string

func (e memError) Error() string { return string(e) }

const errNotEmpty = memError("directory not empty")

// fileInfo は fs.FileInfo の最小実装です
type fileInfo struct {
	name string
	mode fs.FileMode
}

func (f fileInfo) Name() string       { return f.name }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return f.mode }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fileInfo) Sys() any           { return nil }
