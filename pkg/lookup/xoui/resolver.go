package xoui

import (
	"context"
	"fmt"
	"time"

	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/observability/xmetrics"
	"github.com/omeyang/xoui/pkg/util/xmac"
)

const (
	componentName = "xoui"
	opLookup      = "lookup"
	opBatch       = "batch"

	// DefaultConcurrency LookupBatch 默认并发数
	DefaultConcurrency = 8
	// MaxConcurrency LookupBatch 并发数上限
	MaxConcurrency = 1024
)

type resolverOptions struct {
	table       *Table
	cacheSize   int
	cacheTTL    time.Duration
	observer    xmetrics.Observer
	logger      xlog.Logger
	concurrency int
}

// Option 配置 Resolver
type Option func(*resolverOptions)

// WithTable 使用指定参考表，nil 时使用 [Default]
func WithTable(t *Table) Option {
	return func(o *resolverOptions) {
		o.table = t
	}
}

// WithCache 启用结果缓存。size 为 0 表示不缓存，ttl 为 0 表示不过期。
func WithCache(size int, ttl time.Duration) Option {
	return func(o *resolverOptions) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// WithObserver 设置观测器，每次查询开启一个 component=xoui 的跨度
func WithObserver(obs xmetrics.Observer) Option {
	return func(o *resolverOptions) {
		o.observer = obs
	}
}

// WithLogger 设置日志，nil 表示不输出
func WithLogger(l xlog.Logger) Option {
	return func(o *resolverOptions) {
		o.logger = l
	}
}

// WithConcurrency 设置 LookupBatch 的最大并发数
func WithConcurrency(n int) Option {
	return func(o *resolverOptions) {
		o.concurrency = n
	}
}

// Resolver 基于参考表的 OUI 查询入口
//
// 所有方法并发安全。启用缓存时使用完毕应调用 [Resolver.Close]。
type Resolver struct {
	table       *Table
	cache       *resultCache
	observer    xmetrics.Observer
	logger      xlog.Logger
	concurrency int
}

// New 创建 Resolver
func New(opts ...Option) (*Resolver, error) {
	o := resolverOptions{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.cacheSize < 0 || o.cacheSize > maxCacheSize {
		return nil, fmt.Errorf("%w: cache size %d, want 0~%d", ErrInvalidOption, o.cacheSize, maxCacheSize)
	}
	if o.cacheTTL < 0 {
		return nil, fmt.Errorf("%w: cache ttl %s must not be negative", ErrInvalidOption, o.cacheTTL)
	}
	if o.concurrency <= 0 || o.concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: concurrency %d, want 1~%d", ErrInvalidOption, o.concurrency, MaxConcurrency)
	}

	table := o.table
	if table == nil {
		var err error
		if table, err = Default(); err != nil {
			return nil, err
		}
	}

	r := &Resolver{
		table:       table,
		observer:    o.observer,
		logger:      o.logger,
		concurrency: o.concurrency,
	}
	if r.logger == nil {
		r.logger = xlog.Nop()
	}
	if o.cacheSize > 0 {
		r.cache = newResultCache(o.cacheSize, o.cacheTTL)
	}
	return r, nil
}

// Close 释放缓存资源，可重复调用
func (r *Resolver) Close() {
	if r.cache != nil {
		r.cache.close()
	}
}

// Table 返回底层参考表
func (r *Resolver) Table() *Table {
	return r.table
}

// Lookup 规范化输入并查询厂商记录
//
// 输入无法规范化时返回 xmac.ErrTooShort；表中不存在时 ok 为 false 且 err 为 nil。
// 规范化结果相同的输入总是得到相同的记录。
func (r *Resolver) Lookup(ctx context.Context, s string) (Record, bool, error) {
	return r.lookup(ctx, s, func() (xmac.OUI, error) { return xmac.NormalizeOUI(s) })
}

// LookupValue 与 Lookup 相同，但接受任意值。非字符串返回 xmac.ErrNotString。
func (r *Resolver) LookupValue(ctx context.Context, v any) (Record, bool, error) {
	input, _ := v.(string)
	return r.lookup(ctx, input, func() (xmac.OUI, error) { return xmac.NormalizeOUIValue(v) })
}

// LookupOUI 按已规范化的 OUI 查询
func (r *Resolver) LookupOUI(ctx context.Context, oui xmac.OUI) (Record, bool) {
	rec, ok, _ := r.lookup(ctx, oui.String(), func() (xmac.OUI, error) { return oui, nil })
	return rec, ok
}

func (r *Resolver) lookup(ctx context.Context, input string, normalize func() (xmac.OUI, error)) (Record, bool, error) {
	ctx, span := xmetrics.Start(ctx, r.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: opLookup,
	})

	oui, err := normalize()
	if err != nil {
		r.logger.Warn(ctx, "normalize failed", xlog.Input(input), xlog.Err(err))
		span.End(xmetrics.Result{Err: err, Outcome: xmetrics.OutcomeInvalid})
		return Record{}, false, err
	}

	rec, ok := r.resolve(oui)
	outcome := xmetrics.OutcomeMiss
	if ok {
		outcome = xmetrics.OutcomeHit
	}
	r.logger.Debug(ctx, "lookup", xlog.Input(input), xlog.OUI(oui.String()), xlog.Outcome(string(outcome)))
	span.End(xmetrics.Result{
		Outcome: outcome,
		Attrs:   []xmetrics.Attr{xmetrics.String("oui", oui.String())},
	})
	return rec, ok, nil
}

// resolve 先查缓存，未命中再查表，结果（含不存在）写回缓存
func (r *Resolver) resolve(oui xmac.OUI) (Record, bool) {
	if r.cache != nil {
		if cached, hit := r.cache.get(oui); hit {
			return cached.record, cached.found
		}
	}
	rec, ok := r.table.Record(oui)
	if r.cache != nil {
		r.cache.set(oui, cachedResult{record: rec, found: ok})
	}
	return rec, ok
}

// GetVendor 返回厂商名称。记录首行为空时返回 UnknownVendor，与 Lookup 一致。
func (r *Resolver) GetVendor(ctx context.Context, s string) (string, bool, error) {
	rec, ok, err := r.Lookup(ctx, s)
	if err != nil || !ok {
		return "", false, err
	}
	return rec.Vendor, true, nil
}

// IsValid 报告 s 是否能被规范化为 OUI
func (r *Resolver) IsValid(s string) bool {
	return xmac.IsValidOUI(s)
}

// Format 把 12 位十六进制地址格式化为以 sep 分隔的大写形式，见 xmac.FormatAddress
func (r *Resolver) Format(s, sep string) (string, error) {
	return xmac.FormatAddress(s, sep)
}

// Stats 返回参考表统计信息
func (r *Resolver) Stats() Stats {
	return r.table.Stats()
}
