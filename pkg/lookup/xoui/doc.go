// Package xoui 根据 MAC 地址查询网卡厂商（OUI 参考表）。
//
// # 查询
//
// [Resolver.Lookup] 先用 xmac.NormalizeOUI 取输入中前 6 个十六进制字符，
// 再在只读参考表中查找。冒号、短横线或无分隔的写法结果相同：
//
//	r, err := xoui.New()
//	rec, ok, err := r.Lookup(ctx, "10:00:20:11:3A:B7")
//	// rec.OUI = 100020, rec.Vendor = "Apple, Inc."
//
// 表中不存在返回 ok == false 且 err == nil；输入不足 6 个十六进制字符返回 xmac.ErrTooShort。
//
// # 记录
//
// 原始记录按 "\n" 拆分：首行为厂商名（为空时为 [UnknownVendor]），
// 其余行拼接后作为地址。[Resolver.GetVendor] 与 Lookup 使用同一解析，回退规则一致。
//
// # 参考表
//
// [Default] 返回内置于二进制的参考表（data/oui.json），
// [LoadTableFile] 和 [ParseTable] 从 JSON 或 YAML 加载外部表，格式：
//
//	{"version": "sample-2026.09", "entries": {"100020": "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS"}}
//
// 内置表只是少量条目的示例（版本标签为 sample-*）。生产环境应通过
// [LoadTableFile]（xouictl 的 --table）提供完整的参考表。
//
// 表构建后不可修改，可被多个 Resolver 共享。
//
// # 可选能力
//
//   - [WithCache]：按 OUI 缓存解析结果（含不存在），不改变查询结果
//   - [WithObserver]：每次查询一个跨度，outcome 为 hit、miss 或 invalid
//   - [WithLogger]：Debug 记录查询，Warn 记录规范化失败
//   - [Resolver.LookupBatch]：有界并发批量查询，结果保持输入顺序
package xoui
