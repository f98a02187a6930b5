package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Document 是一份已解析的 YAML/JSON 文档。
// 只提供增值功能，基础操作请直接使用 Client() 返回的 koanf 实例。
// Document 加载后只读，可以并发使用。
type Document interface {
	// Client 返回底层的 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将指定路径的内容反序列化到目标结构体。
	// path 为空字符串时反序列化整个文档。
	// 使用 mapstructure 进行反序列化（弱类型转换，支持 "10m" → time.Duration）。
	Unmarshal(path string, target any) error

	// Path 返回文档来源的文件路径，从字节数据创建时返回空字符串。
	Path() string

	// Format 返回文档格式。
	Format() Format
}
