package xoui

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/omeyang/xoui/pkg/util/xmac"
)

// 缓存容量上限，与 xconf.MaxCacheSize 保持一致
const maxCacheSize = 1 << 24

// cachedResult 缓存的查询结果，found 为 false 表示表中不存在（负缓存）
type cachedResult struct {
	record Record
	found  bool
}

// resultCache 按 OUI 缓存解析后的记录
type resultCache struct {
	lru       *expirable.LRU[xmac.OUI, cachedResult]
	closed    atomic.Bool
	closeOnce sync.Once
}

// newResultCache 创建缓存。ttl 为 0 表示不过期。
func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[xmac.OUI, cachedResult](size, nil, ttl),
	}
}

func (c *resultCache) get(oui xmac.OUI) (cachedResult, bool) {
	if c.closed.Load() {
		return cachedResult{}, false
	}
	return c.lru.Get(oui)
}

func (c *resultCache) set(oui xmac.OUI, r cachedResult) {
	if c.closed.Load() {
		return
	}
	c.lru.Add(oui, r)
}

func (c *resultCache) len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// close 清空缓存并停止过期清理 goroutine，可重复调用
func (c *resultCache) close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopExpiry(c.lru)
	})
}

// stopExpiry 关闭 expirable.LRU 内部的 done 通道，使 TTL 清理 goroutine 退出。
//
// golang-lru/v2 v2.0.7 在 TTL > 0 时启动清理 goroutine，但没有公开的停止方法。
// 上游字段名或类型变化时返回 false，goroutine 会泄漏，由 TestStopExpiry_UpstreamLayout 发现。
func stopExpiry(lru any) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	done := v.Elem().FieldByName("done")
	if !done.IsValid() || done.Type() != reflect.TypeOf(make(chan struct{})) || done.IsNil() {
		return false
	}

	ch := *(*chan struct{})(unsafe.Pointer(done.UnsafeAddr())) //nolint:gosec // 访问上游未导出字段
	close(ch)
	return true
}
