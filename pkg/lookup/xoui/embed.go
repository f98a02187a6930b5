package xoui

import (
	_ "embed"
	"sync"

	"github.com/omeyang/xoui/pkg/config/xconf"
)

//go:embed data/oui.json
var embeddedTable []byte

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return ParseTable(embeddedTable, xconf.FormatJSON)
})

// Default 返回内置参考表，首次调用时解析，之后复用同一实例
func Default() (*Table, error) {
	return loadDefault()
}
