// Package lookup 提供基于参考表的查询子包。
//
// 子包列表：
//   - xoui: OUI 厂商查询，内置参考表、结果缓存和批量查询
package lookup
