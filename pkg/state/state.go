package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// State 进程级持久化状态
type State struct {
	LastCleanFolder string `json:"last_clean_folder"`
}

// Store 保存上次整理的目标目录，用于提供“恢复上次整理”入口
// 所有错误都包装为 ErrStatePersistence，调用方可以忽略
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path 返回状态文件路径
func (s *Store) Path() string {
	return s.path
}

// Load 读取上次整理的目录，文件不存在时返回空串
func (s *Store) Load() (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: 读取 %s: %v", internal.ErrStatePersistence, s.path, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return "", fmt.Errorf("%w: 解析 %s: %v", internal.ErrStatePersistence, s.path, err)
	}
	return st.LastCleanFolder, nil
}

// Save 记录上次整理的目录
func (s *Store) Save(destDir string) error {
	return s.write(State{LastCleanFolder: destDir})
}

// Clear 清除上次整理的目录
func (s *Store) Clear() error {
	return s.write(State{})
}

func (s *Store) write(st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: %v", internal.ErrStatePersistence, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: 创建 %s: %v", internal.ErrStatePersistence, filepath.Dir(s.path), err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: 写入 %s: %v", internal.ErrStatePersistence, s.path, err)
	}
	return nil
}

// RestoreAvailable 返回上次整理的目录，以及该目录当前是否仍然存在
// 目录存在并不代表其中还有有效的移动记录
func (s *Store) RestoreAvailable() (string, bool) {
	dir, err := s.Load()
	if err != nil {
		logger.Get().Debug().Err(err).Msg("状态文件不可用，视为没有整理记录")
		return "", false
	}
	if dir == "" {
		return "", false
	}
	ok, err := afero.DirExists(s.fs, dir)
	if err != nil || !ok {
		return dir, false
	}
	return dir, true
}
