package xmac

import (
	"fmt"
	"net"
)

// OUILen 是 OUI 的字节长度。
const OUILen = 3

// ouiHexLen 是规范 OUI 字符串的十六进制位数。
const ouiHexLen = OUILen * 2

// OUI 表示组织唯一标识符（Organizationally Unique Identifier），
// 即 MAC 地址的前 3 字节，由 IEEE 分配给设备制造商。
//
// OUI 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - String() 总是输出 6 位大写十六进制（规范标识符），如 "100020"
//   - 并发安全，无需加锁
type OUI struct {
	bytes [OUILen]byte
}

// OUIFrom3 从 3 字节数组创建 OUI。
func OUIFrom3(b [OUILen]byte) OUI {
	return OUI{bytes: b}
}

// Bytes 返回 OUI 的字节表示。
func (o OUI) Bytes() [OUILen]byte {
	return o.bytes
}

// IsZero 报告 o 是否为 00:00:00。
// 00-00-00 是 IEEE 实际分配过的 OUI，零值仍可参与查表。
func (o OUI) IsZero() bool {
	return o == OUI{}
}

// String 返回规范标识符：6 位大写十六进制，无分隔符。
func (o OUI) String() string {
	var buf [ouiHexLen]byte
	for i, b := range o.bytes {
		buf[i*2] = hexUpper[b>>4]
		buf[i*2+1] = hexUpper[b&0x0f]
	}
	return string(buf[:])
}

// NormalizeOUI 从任意文本形式的 MAC 地址中提取规范 OUI。
//
// 规则：
//   - 去除所有非十六进制字符（分隔符、空白、非法字符一律忽略）
//   - 剩余不足 6 位时返回 [ErrTooShort]
//   - 取前 6 位并统一为大写，多余的位数直接忽略（不是错误）
//
// 因此 "10:00:20:11:3A:B7"、"10-00-20-11-3A-B7"、"100020113AB7" 和
// "1000.2011.3ab7" 都得到同一个 OUI "100020"。
func NormalizeOUI(s string) (OUI, error) {
	var digits [ouiHexLen]byte
	if n := collectHex(s, digits[:]); n < ouiHexLen {
		return OUI{}, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}
	return ouiFromDigits(digits), nil
}

// NormalizeOUIValue 是 [NormalizeOUI] 的动态类型入口，
// 用于来自 JSON、模板等无法在编译期确定类型的输入。
//
// 接受 string 和非 nil 的 *string，其他类型（包括 nil）返回 [ErrNotString]。
func NormalizeOUIValue(v any) (OUI, error) {
	switch s := v.(type) {
	case string:
		return NormalizeOUI(s)
	case *string:
		if s == nil {
			return OUI{}, ErrNotString
		}
		return NormalizeOUI(*s)
	default:
		return OUI{}, fmt.Errorf("%w: got %T", ErrNotString, v)
	}
}

// MustNormalizeOUI 类似 [NormalizeOUI]，但失败时 panic。
// 仅用于包级变量初始化或测试。
func MustNormalizeOUI(s string) OUI {
	o, err := NormalizeOUI(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustNormalizeOUI(%q): %v", s, err))
	}
	return o
}

// ParseOUI 严格解析 OUI 字面量，用于参考表键等受控输入。
//
// 只允许十六进制字符与分隔符（':'、'-'、'.'、空格），
// 且十六进制字符必须恰好 6 位：
//
//	"100020", "10:00:20", "10-00-20", "1000.20"
//
// 不满足时返回 [ErrInvalidOUI]。
func ParseOUI(s string) (OUI, error) {
	var digits [ouiHexLen]byte
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isHex(c):
			if n < ouiHexLen {
				digits[n] = c
			}
			n++
		case c == ':' || c == '-' || c == '.' || c == ' ':
		default:
			return OUI{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidOUI, c, s)
		}
	}
	if n != ouiHexLen {
		return OUI{}, fmt.Errorf("%w: expected 6 hex digits in %q, got %d", ErrInvalidOUI, s, n)
	}
	return ouiFromDigits(digits), nil
}

// OUIFromHardwareAddr 返回 [net.HardwareAddr] 的 OUI。
// EUI-48 与 EUI-64 的前 3 字节都是 OUI；不足 3 字节返回 [ErrTooShort]。
func OUIFromHardwareAddr(hw net.HardwareAddr) (OUI, error) {
	if len(hw) < OUILen {
		return OUI{}, fmt.Errorf("%w: got %d bytes", ErrTooShort, len(hw))
	}
	return OUI{bytes: [OUILen]byte{hw[0], hw[1], hw[2]}}, nil
}

// ouiFromDigits 把 6 个十六进制字符转换为 OUI。
func ouiFromDigits(d [ouiHexLen]byte) OUI {
	return OUI{bytes: [OUILen]byte{
		parseHexByte(d[0], d[1]),
		parseHexByte(d[2], d[3]),
		parseHexByte(d[4], d[5]),
	}}
}
