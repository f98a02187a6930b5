// Package xconf 提供 YAML/JSON 文档的加载与反序列化，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化加载器，承担两类输入：
//   - 工具运行配置 [Settings]（参考表路径、缓存、并发度、日志）
//   - 外部参考表文件（由 xoui 通过 [Load]/[Parse] 读取）
//
// 加载后的 [Document] 只读。参考表在进程启动时加载一次，
// 不提供热重载，因此也不监视文件变更。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// YAML 中形如 005056 的键会被解析为整数，参考表文件的键必须加引号。
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 进行反序列化，默认允许弱类型转换
// （例如字符串 "8080" 可自动转为 int，"10m" 转为 time.Duration）。
//
// # 默认值
//
// [LoadSettings] 先填充 [DefaultSettings]，再用文件内容覆盖，
// 文件中未出现的字段保留默认值，最后执行 [Settings.Validate]。
package xconf
