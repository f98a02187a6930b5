package xconf

// Options 定义文档加载选项。
type Options struct {
	// Delim 键路径分隔符，默认为 "."。
	Delim string

	// Tag 结构体标签名，用于 Unmarshal，默认为 "koanf"。
	Tag string
}

// Option 定义加载选项函数类型。
type Option func(*Options)

// defaultOptions 返回默认加载选项。
func defaultOptions() *Options {
	return &Options{
		Delim: ".",
		Tag:   "koanf",
	}
}

// WithDelim 设置键路径分隔符。
//
// 分隔符只影响路径表达式（Unmarshal 的 path 参数和 Client() 的 Get/String 等）。
// 键本身可能包含 "."（例如参考表里写成 "1000.20" 的 OUI）时，
// 换成键中不会出现的分隔符才能按路径访问单个键。
// 空字符串被忽略。
func WithDelim(delim string) Option {
	return func(o *Options) {
		if delim != "" {
			o.Delim = delim
		}
	}
}

// WithTag 设置结构体标签名。空字符串被忽略。
func WithTag(tag string) Option {
	return func(o *Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}
