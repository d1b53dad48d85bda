package app

import (
	"path/filepath"
	"strings"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/organizer"
)

// 常用目录快捷名
var Shortcuts = map[string]string{
	"desktop":   "~/Desktop",
	"downloads": "~/Downloads",
}

// ResolveSource 将快捷名或用户输入的路径解析为绝对路径
func ResolveSource(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if p, ok := Shortcuts[strings.ToLower(arg)]; ok {
		arg = p
	}

	expanded, err := internal.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// ResolveDestination 解析恢复目标：接受整理目录本身，
// 也接受源目录或其快捷名，此时补上 TidyDesk 子目录
func ResolveDestination(arg string) (string, error) {
	resolved, err := ResolveSource(arg)
	if err != nil {
		return "", err
	}
	if filepath.Base(resolved) == internal.DestFolderName {
		return resolved, nil
	}
	return organizer.DestinationFor(resolved)
}
