package xoui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/omeyang/xoui/pkg/config/xconf"
	"github.com/omeyang/xoui/pkg/util/xmac"
)

// Table 只读的 OUI 参考表
//
// 由 [NewTable]、[ParseTable]、[LoadTableFile] 或 [Default] 构建，构建后不再修改，
// 可被多个 goroutine 无锁共享。
type Table struct {
	version string
	entries map[xmac.OUI]string
	stats   Stats
}

// tableDocument 表文件结构
type tableDocument struct {
	Version string            `koanf:"version"`
	Entries map[string]string `koanf:"entries"`
}

// NewTable 校验并复制 entries 构建参考表
//
// 键按 [xmac.ParseOUI] 的严格规则解析（允许 ':' '-' '.' 和空格分隔），
// 不同写法规范化后相同视为重复。值不能为空。
func NewTable(version string, entries map[string]string) (*Table, error) {
	t := &Table{
		version: version,
		entries: make(map[xmac.OUI]string, len(entries)),
	}

	// 排序保证错误信息稳定
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		raw := entries[key]
		if key == "" {
			return nil, ErrEmptyKey
		}
		if raw == "" {
			return nil, fmt.Errorf("%w: key %q", ErrEmptyEntry, key)
		}
		oui, err := xmac.ParseOUI(key)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidTable, key, err)
		}
		if _, dup := t.entries[oui]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q (%s)", ErrInvalidTable, key, oui)
		}
		t.entries[oui] = raw
	}

	t.stats = computeStats(t)
	return t, nil
}

// ParseTable 解析 JSON 或 YAML 格式的表数据：
//
//	{"version": "sample-2026.09", "entries": {"100020": "Apple, Inc.\n1 Infinite Loop..."}}
//
// YAML 中纯数字形式的键需要加引号。
func ParseTable(data []byte, format xconf.Format) (*Table, error) {
	// OUI 键可能包含 '.'，使用 '/' 使 Client() 能按 "entries/<key>" 访问单个条目
	doc, err := xconf.Parse(data, format, xconf.WithDelim("/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return tableFrom(doc)
}

// LoadTableFile 从文件加载参考表，格式由扩展名决定（.json/.yaml/.yml）
func LoadTableFile(path string) (*Table, error) {
	doc, err := xconf.Load(path, xconf.WithDelim("/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return tableFrom(doc)
}

func tableFrom(doc xconf.Document) (*Table, error) {
	var td tableDocument
	if err := doc.Unmarshal("", &td); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if len(td.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidTable)
	}
	return NewTable(td.Version, td.Entries)
}

// Version 表版本标签
func (t *Table) Version() string {
	return t.version
}

// Len 条目数
func (t *Table) Len() int {
	return len(t.entries)
}

// Raw 返回 OUI 对应的原始文本
func (t *Table) Raw(oui xmac.OUI) (string, bool) {
	raw, ok := t.entries[oui]
	return raw, ok
}

// Record 返回 OUI 对应的解析后记录
func (t *Table) Record(oui xmac.OUI) (Record, bool) {
	raw, ok := t.entries[oui]
	if !ok {
		return Record{}, false
	}
	return parseRecord(oui, raw), true
}

// Stats 返回构建时计算的统计信息
func (t *Table) Stats() Stats {
	return t.stats
}

// OUIs 按升序返回所有键
func (t *Table) OUIs() []xmac.OUI {
	return slices.SortedFunc(maps.Keys(t.entries), compareOUI)
}

func compareOUI(a, b xmac.OUI) int {
	ab, bb := a.Bytes(), b.Bytes()
	return slices.Compare(ab[:], bb[:])
}
