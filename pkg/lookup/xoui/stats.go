package xoui

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Stats 参考表统计信息
type Stats struct {
	// TotalEntries 条目总数
	TotalEntries int `json:"total_entries"`
	// UniqueVendors 不同首行文本的数量（按原文精确比较，不做 Unknown 替换）
	UniqueVendors int `json:"unique_vendors"`
	// Version 表版本标签
	Version string `json:"version"`
	// Digest 表内容的 xxhash64 摘要，16 位小写十六进制
	Digest string `json:"digest"`
}

func computeStats(t *Table) Stats {
	vendors := make(map[string]struct{}, len(t.entries))
	d := xxhash.New()
	for _, oui := range t.OUIs() {
		raw := t.entries[oui]
		vendors[firstLine(raw)] = struct{}{}

		// 键与值之间用 0 分隔，条目之间用换行分隔，按键升序写入保证摘要与 map 顺序无关
		_, _ = d.WriteString(oui.String()) //nolint:errcheck // xxhash 写入不会失败
		_, _ = d.Write([]byte{0})          //nolint:errcheck // 同上
		_, _ = d.WriteString(raw)          //nolint:errcheck // 同上
		_, _ = d.Write([]byte{'\n'})       //nolint:errcheck // 同上
	}

	return Stats{
		TotalEntries:  len(t.entries),
		UniqueVendors: len(vendors),
		Version:       t.version,
		Digest:        fmt.Sprintf("%016x", d.Sum64()),
	}
}
