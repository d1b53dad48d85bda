package history

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// 运行状态
const (
	StatusOK           = "ok"
	StatusAlreadyClean = "already_clean"
	StatusNotFound     = "not_found"
	StatusFailed       = "failed"
)

// Run 一次整理或恢复的审计记录
type Run struct {
	ID          string    `gorm:"primaryKey"`
	Kind        string    `gorm:"index;not null"`
	Source      string    `gorm:"not null;default:''"`
	Destination string    `gorm:"index;not null"`
	Moved       int       `gorm:"not null;default:0"`
	Restored    int       `gorm:"not null;default:0"`
	Skipped     int       `gorm:"not null;default:0"`
	Failed      int       `gorm:"not null;default:0"`
	Status      string    `gorm:"not null"`
	Message     string    `gorm:"not null;default:''"`
	StartedAt   time.Time `gorm:"not null"`
	FinishedAt  time.Time `gorm:"not null;index"`
}

func (Run) TableName() string {
	return "runs"
}

// History 运行历史数据库
type History struct {
	db *gorm.DB
}

// Open 打开（必要时创建）历史数据库
func Open(dbPath string) (*History, error) {
	expandedPath, err := internal.ExpandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Get().Debug().Msgf("打开历史数据库，路径: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(expandedPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&Run{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		sqlDB.Close()
		return nil, err
	}

	return &History{db: db}, nil
}

// RecordCleanup 记录一次整理，runErr 为整理返回的错误
func (h *History) RecordCleanup(source string, result *internal.CleanupResult, runErr error) (*Run, error) {
	run := &Run{
		ID:         uuid.NewString(),
		Kind:       string(internal.RunCleanup),
		Source:     source,
		Status:     StatusOK,
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
	}

	if result != nil {
		run.Source = result.Source
		run.Destination = result.Destination
		run.Moved = result.Moved
		run.Skipped = result.Skipped
		run.Failed = result.Failed
		run.StartedAt = result.StartTime
		if !result.EndTime.IsZero() {
			run.FinishedAt = result.EndTime
		}
		if result.AlreadyClean() {
			run.Status = StatusAlreadyClean
		}
	}

	if runErr != nil {
		run.Status = StatusFailed
		run.Message = runErr.Error()
	}

	return run, h.insert(run)
}

// RecordRestore 记录一次恢复，runErr 为恢复返回的错误
func (h *History) RecordRestore(destination string, result *internal.RestoreResult, runErr error) (*Run, error) {
	run := &Run{
		ID:          uuid.NewString(),
		Kind:        string(internal.RunRestore),
		Destination: destination,
		Status:      StatusOK,
		StartedAt:   time.Now(),
		FinishedAt:  time.Now(),
	}

	if result != nil {
		run.Destination = result.Destination
		run.Restored = result.Restored
		run.Skipped = result.Skipped
		run.Failed = result.Failed
		run.StartedAt = result.StartTime
		if !result.EndTime.IsZero() {
			run.FinishedAt = result.EndTime
		}
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, internal.ErrRecordNotFound):
		run.Status = StatusNotFound
		run.Message = runErr.Error()
	default:
		run.Status = StatusFailed
		run.Message = runErr.Error()
	}

	return run, h.insert(run)
}

func (h *History) insert(run *Run) error {
	if err := h.db.Create(run).Error; err != nil {
		logger.Get().Error().Err(err).Msgf("写入运行历史失败: %s", run.ID)
		return err
	}
	logger.Get().Debug().Msgf("写入运行历史: %s (%s, %s)", run.ID, run.Kind, run.Status)
	return nil
}

// Recent 按完成时间倒序返回最近 limit 条记录
func (h *History) Recent(limit int) ([]Run, error) {
	var runs []Run
	q := h.db.Order("finished_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// ForDestination 返回某个整理目录的全部记录，按完成时间正序
func (h *History) ForDestination(destination string) ([]Run, error) {
	var runs []Run
	if err := h.db.Where("destination = ?", destination).Order("finished_at ASC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *History) Close() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return err
	}
	return sqlDB.Close()
}
