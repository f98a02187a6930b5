package xoui

import "errors"

var (
	// ErrEmptyKey 表中存在空键
	ErrEmptyKey = errors.New("xoui: empty table key")
	// ErrEmptyEntry 表中存在空记录
	ErrEmptyEntry = errors.New("xoui: empty table entry")
	// ErrInvalidTable 表数据无法解析，或键不是合法 OUI，或规范化后键重复
	ErrInvalidTable = errors.New("xoui: invalid table")
	// ErrInvalidOption 解析器配置无效
	ErrInvalidOption = errors.New("xoui: invalid option")
)
