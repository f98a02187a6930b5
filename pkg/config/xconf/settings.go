package xconf

import (
	"fmt"
	"strings"
	"time"
)

// 设置项默认值与上限。
const (
	// DefaultConcurrency 批量查询的默认并发度。
	DefaultConcurrency = 8

	// MaxConcurrency 批量查询并发度上限。
	MaxConcurrency = 1024

	// MaxCacheSize 查询缓存条目数上限，与 OUI 空间大小（2^24）一致。
	MaxCacheSize = 1 << 24

	// DefaultLogLevel 默认日志级别。
	DefaultLogLevel = "info"

	// DefaultLogFormat 默认日志格式。
	DefaultLogFormat = "text"
)

// Settings 是 xouictl 等工具的运行配置。
//
// 对应的 YAML 示例：
//
//	table:
//	  path: /etc/xoui/oui.yaml
//	cache:
//	  size: 4096
//	  ttl: 10m
//	lookup:
//	  concurrency: 16
//	log:
//	  level: debug
//	  format: json
//	  file: /var/log/xoui/xouictl.log
type Settings struct {
	Table  TableSettings  `koanf:"table"`
	Cache  CacheSettings  `koanf:"cache"`
	Lookup LookupSettings `koanf:"lookup"`
	Log    LogSettings    `koanf:"log"`
}

// TableSettings 参考表来源。
type TableSettings struct {
	// Path 外部参考表文件（.json/.yaml/.yml），为空时使用内嵌表。
	Path string `koanf:"path"`
}

// CacheSettings 查询结果缓存。
type CacheSettings struct {
	// Size 缓存条目数，0 表示不启用缓存。
	Size int `koanf:"size"`

	// TTL 条目过期时间，0 表示永不过期。
	TTL time.Duration `koanf:"ttl"`
}

// LookupSettings 查询行为。
type LookupSettings struct {
	// Concurrency 批量查询的最大并发度。
	Concurrency int `koanf:"concurrency"`
}

// LogSettings 日志输出。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`

	// File 日志文件路径，为空时输出到 stderr。设置后按大小轮转。
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// DefaultSettings 返回默认配置：内嵌参考表、不启用缓存、info 级别文本日志。
func DefaultSettings() *Settings {
	return &Settings{
		Lookup: LookupSettings{Concurrency: DefaultConcurrency},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadSettings 从文件加载配置，文件中未出现的字段保留默认值。
// 加载后执行 [Settings.Validate]。
func LoadSettings(path string) (*Settings, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return SettingsFrom(doc)
}

// SettingsFrom 从已解析的文档读取配置，文档中未出现的字段保留默认值。
func SettingsFrom(doc Document) (*Settings, error) {
	s := DefaultSettings()
	if err := doc.Unmarshal("", s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate 校验取值范围。
// 日志级别的合法性由 xlog 在构建 Logger 时校验。
func (s *Settings) Validate() error {
	if s.Cache.Size < 0 || s.Cache.Size > MaxCacheSize {
		return fmt.Errorf("%w: cache.size must be in [0, %d], got %d", ErrInvalidSettings, MaxCacheSize, s.Cache.Size)
	}
	if s.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative, got %s", ErrInvalidSettings, s.Cache.TTL)
	}
	if s.Lookup.Concurrency < 1 || s.Lookup.Concurrency > MaxConcurrency {
		return fmt.Errorf("%w: lookup.concurrency must be in [1, %d], got %d", ErrInvalidSettings, MaxConcurrency, s.Lookup.Concurrency)
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidSettings, s.Log.Format)
	}
	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation limits must not be negative", ErrInvalidSettings)
	}
	return nil
}
