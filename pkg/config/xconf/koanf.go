package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// koanfDocument 是 Document 接口的 koanf 实现。
type koanfDocument struct {
	k      *koanf.Koanf
	path   string
	format Format
	tag    string
}

// Load 从文件路径加载文档。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string, opts ...Option) (Document, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	doc, err := parse(data, format, opts)
	if err != nil {
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// Parse 从字节数据解析文档，需要显式指定格式。
// 适用于 go:embed 嵌入的资源或从其他来源读取的内容。
//
// 空数据会得到一个空文档，Unmarshal 返回目标结构体的原值。
func Parse(data []byte, format Format, opts ...Option) (Document, error) {
	return parse(data, format, opts)
}

func parse(data []byte, format Format, opts []Option) (*koanfDocument, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	k := koanf.New(options.Delim)
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	return &koanfDocument{
		k:      k,
		format: format,
		tag:    options.Tag,
	}, nil
}

// Client 返回底层的 koanf 实例。
func (d *koanfDocument) Client() *koanf.Koanf {
	return d.k
}

// Unmarshal 将指定路径的内容反序列化到目标结构体。
func (d *koanfDocument) Unmarshal(path string, target any) error {
	if err := d.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: d.tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Path 返回文件路径。
func (d *koanfDocument) Path() string {
	return d.path
}

// Format 返回文档格式。
func (d *koanfDocument) Format() Format {
	return d.format
}

// MustUnmarshal 与 Document.Unmarshal 相同，但失败时 panic。
// 适用于程序启动时的必要配置加载。
func MustUnmarshal(doc Document, path string, target any) {
	if err := doc.Unmarshal(path, target); err != nil {
		panic(err)
	}
}

// DetectFormat 根据文件扩展名检测格式。
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
