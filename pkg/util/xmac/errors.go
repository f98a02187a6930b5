package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNotString 表示输入不是字符串（包括 nil）。
	ErrNotString = errors.New("xmac: MAC address must be a string")

	// ErrTooShort 表示去除非十六进制字符后不足 6 位，无法提取 OUI。
	ErrTooShort = errors.New("xmac: MAC address must contain at least 6 hex digits")

	// ErrWrongLength 表示去除非十六进制字符后不是恰好 12 位，无法格式化为完整地址。
	ErrWrongLength = errors.New("xmac: MAC address must contain exactly 12 hex digits")

	// ErrInvalidOUI 表示 OUI 字面量无效（用于参考表键等严格场景）。
	ErrInvalidOUI = errors.New("xmac: invalid OUI")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
