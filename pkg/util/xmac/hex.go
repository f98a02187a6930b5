package xmac

// hexUpper 大写十六进制字符表。
const hexUpper = "0123456789ABCDEF"

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
//
// 按字节处理：UTF-8 多字节序列的每个字节都 >= 0x80，不会被误判为十六进制字符。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// isHex 报告 c 是否为十六进制字符。
func isHex(c byte) bool {
	return hexValue(c) >= 0
}

// parseHexByte 解析两个十六进制字符为一个字节。
// 调用方保证两个字符均为十六进制字符。
func parseHexByte(high, low byte) byte {
	return byte(hexValue(high)<<4 | hexValue(low))
}

// collectHex 依次收集 s 中的十六进制字符到 dst，返回 s 中十六进制字符的总数。
// 超出 dst 容量的字符只计数不写入。
func collectHex(s string, dst []byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			continue
		}
		if n < len(dst) {
			dst[n] = s[i]
		}
		n++
	}
	return n
}
