// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址与 OUI 工具，规范化、校验、格式化和序列化
package util
