package xoui

import (
	"strings"

	"github.com/omeyang/xoui/pkg/util/xmac"
)

// UnknownVendor 记录首行为空时使用的厂商名
const UnknownVendor = "Unknown"

// Record 一条厂商记录
type Record struct {
	// OUI 规范化后的标识
	OUI xmac.OUI `json:"oui"`
	// Vendor 记录首行，为空时为 UnknownVendor
	Vendor string `json:"vendor"`
	// Address 其余各行以 "\n" 连接并去除首尾空白，可能为空
	Address string `json:"address"`
	// Raw 表中的原始文本
	Raw string `json:"raw"`
}

// AddressLines 按行拆分地址，地址为空时返回 nil
func (r Record) AddressLines() []string {
	if r.Address == "" {
		return nil
	}
	return strings.Split(r.Address, "\n")
}

// parseRecord 把原始文本拆成厂商与地址。每行末尾的 "\r" 被丢弃。
func parseRecord(oui xmac.OUI, raw string) Record {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	vendor := lines[0]
	if vendor == "" {
		vendor = UnknownVendor
	}

	return Record{
		OUI:     oui,
		Vendor:  vendor,
		Address: strings.TrimSpace(strings.Join(lines[1:], "\n")),
		Raw:     raw,
	}
}

// firstLine 返回原始文本首行（不做 Unknown 替换），用于厂商去重统计
func firstLine(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	return strings.TrimSuffix(line, "\r")
}
