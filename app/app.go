package app

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/config"
	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
	"github.com/sidharthgehlot/TidyDesk/pkg/history"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
	"github.com/sidharthgehlot/TidyDesk/pkg/organizer"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
	"github.com/sidharthgehlot/TidyDesk/pkg/state"
)

type Options struct {
	ConfigFile string
	Config     *config.Config // 非空时不再读取配置文件
	Verbose    bool
	LogWriter  io.Writer // 为空时写到 os.Stderr
	Fs         afero.Fs  // 默认 afero.NewOsFs()
	SelfPath   string    // 默认当前程序路径
}

// App 组装配置、日志、状态、历史和整理引擎
type App struct {
	Config    *config.Config
	Fs        afero.Fs
	Table     *classifier.Table
	State     *state.Store
	History   *history.History // 未启用或打开失败时为 nil
	Organizer *organizer.Organizer
}

func New(opts *Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		var loaded *config.Config
		var err error
		if opts.ConfigFile == "" {
			loaded, err = config.Load()
		} else {
			loaded, err = config.LoadFrom(opts.ConfigFile)
		}
		if err != nil {
			return nil, fmt.Errorf("加载配置失败: %w", err)
		}
		cfg = loaded
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	if opts.LogWriter == nil {
		if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
			return nil, err
		}
	} else if err := logger.InitWithWriter(logLevel, cfg.Logging.File, opts.LogWriter); err != nil {
		return nil, err
	}

	logger.Get().Debug().Msg("加载配置完成")

	table, err := cfg.CategoryTable()
	if err != nil {
		return nil, fmt.Errorf("分类配置无效: %w", err)
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	selfPath := opts.SelfPath
	if selfPath == "" {
		selfPath = scanner.ExecutablePath()
	}

	statePath, err := internal.ExpandPath(cfg.State.Path)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("无法展开状态文件路径")
		statePath = cfg.State.Path
	}
	store := state.NewStore(fs, statePath)

	a := &App{
		Config:    cfg,
		Fs:        fs,
		Table:     table,
		State:     store,
		Organizer: organizer.New(fs, table, scanner.NewFilter(selfPath), store),
	}
	a.Organizer.Scanner().Sniff = cfg.Scanner.Sniff

	if cfg.History.Enabled {
		h, err := history.Open(cfg.History.Path)
		if err != nil {
			// 历史记录只是附加功能
			logger.Get().Warn().Err(err).Msg("打开历史数据库失败，本次不记录历史")
		} else {
			a.History = h
		}
	}

	return a, nil
}

func (a *App) Close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}
