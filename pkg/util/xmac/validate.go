package xmac

// IsValidOUI 报告 s 能否提取出 OUI，即 [NormalizeOUI] 是否会成功。
//
// 只检查十六进制位数（至少 6 位），不检查单播/多播等位语义。
// 空字符串返回 false。
func IsValidOUI(s string) bool {
	_, err := NormalizeOUI(s)
	return err == nil
}

// IsValidAddress 报告 s 能否格式化为完整地址，即 [FormatAddress] 是否会成功。
func IsValidAddress(s string) bool {
	var digits [addrHexLen]byte
	return collectHex(s, digits[:]) == addrHexLen
}
