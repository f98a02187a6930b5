// Package xmac 提供 MAC 地址文本的规范化、校验与格式化。
//
// xmac 面向"从任意文本中识别厂商"这一场景：输入往往来自日志、ARP 表、
// 交换机命令输出或人工录入，分隔符五花八门，还可能夹杂非法字符。
// 因此规范化采用"剥离非十六进制字符"而不是按固定格式解析。
//
// # 两条独立的校验路径
//
// [NormalizeOUI] 提取 OUI（前 3 字节）：
//   - 去除所有非十六进制字符后至少 6 位，取前 6 位并转为大写
//   - 多余的位数直接忽略，因此超过 12 位的输入同样有效
//   - 不足 6 位返回 [ErrTooShort]
//
// [FormatAddress] 输出完整地址：
//   - 去除所有非十六进制字符后必须恰好 12 位，否则返回 [ErrWrongLength]
//   - 按原顺序分为 6 组，用调用方给定的分隔符连接并转为大写
//
// 两者有意保持不对称：查厂商只需要前 6 位，而格式化必须拿到完整地址。
//
// # 快速示例
//
//	oui, err := xmac.NormalizeOUI("10-00-20-11-3A-B7")
//	fmt.Println(oui)                          // 100020
//
//	s, err := xmac.FormatAddress("001b44113ab7", "-")
//	fmt.Println(s)                            // 00-1B-44-11-3A-B7
//
//	xmac.IsValidOUI("12:34")                  // false
//
// # 动态类型输入
//
// 来自 JSON 等动态数据源的值可能根本不是字符串，
// 使用 [NormalizeOUIValue]，非字符串（包括 nil）返回 [ErrNotString]。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断，返回的错误会附带实际位数等细节：
//
//	_, err := xmac.NormalizeOUI("123")
//	if errors.Is(err, xmac.ErrTooShort) {
//	    // 十六进制位数不足
//	}
//
// # 序列化
//
// [OUI] 实现 encoding.TextMarshaler/TextUnmarshaler 与 SQL Valuer/Scanner，
// 文本形式即规范标识符（6 位大写十六进制）。
package xmac
