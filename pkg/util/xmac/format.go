package xmac

import (
	"fmt"
	"strings"
)

// DefaultSeparator 是 [FormatDefault] 使用的分隔符。
const DefaultSeparator = ":"

// addrHexLen 是完整 48 位地址的十六进制位数。
const addrHexLen = 12

// FormatAddress 把 MAC 地址格式化为 6 组两位大写十六进制，用 sep 连接。
//
// 与 [NormalizeOUI] 不同，这里要求去除非十六进制字符后恰好 12 位，
// 否则返回 [ErrWrongLength]：
//
//	FormatAddress("001b44113ab7", ":")  // "00:1B:44:11:3A:B7"
//	FormatAddress("001b44113ab7", "-")  // "00-1B-44-11-3A-B7"
//
// sep 原样插入，不做任何校验；整个结果统一转为大写，
// 因此字母分隔符也会被转为大写。
func FormatAddress(s, sep string) (string, error) {
	var digits [addrHexLen]byte
	if n := collectHex(s, digits[:]); n != addrHexLen {
		return "", fmt.Errorf("%w: got %d", ErrWrongLength, n)
	}

	var b strings.Builder
	b.Grow(addrHexLen + 5*len(sep))
	for i := 0; i < addrHexLen; i += 2 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteByte(digits[i])
		b.WriteByte(digits[i+1])
	}
	return strings.ToUpper(b.String()), nil
}

// FormatDefault 使用冒号分隔符调用 [FormatAddress]。
func FormatDefault(s string) (string, error) {
	return FormatAddress(s, DefaultSeparator)
}

// FormatOUI 把 OUI 格式化为 3 组两位大写十六进制，用 sep 连接，
// 例如 FormatOUI(o, ":") 得到 "10:00:20"。
func FormatOUI(o OUI, sep string) string {
	var b strings.Builder
	b.Grow(ouiHexLen + 2*len(sep))
	for i, c := range o.bytes {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteByte(hexUpper[c>>4])
		b.WriteByte(hexUpper[c&0x0f])
	}
	return b.String()
}
