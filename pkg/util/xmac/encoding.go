package xmac

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范标识符（如 "100020"）。
//
// encoding/json 对实现了 TextMarshaler 的类型同时用于值和 map 键，
// 因此 map[OUI]T 可以直接序列化为以规范标识符为键的 JSON 对象。
func (o OUI) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 按 [ParseOUI] 的严格规则解析；空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (o *OUI) UnmarshalText(text []byte) error {
	if o == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*o = OUI{}
		return nil
	}
	parsed, err := ParseOUI(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，写入规范标识符字符串。
func (o OUI) Value() (driver.Value, error) {
	return o.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 3 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (o *OUI) Scan(src any) error {
	if o == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*o = OUI{}
		return nil
	case string:
		return o.UnmarshalText([]byte(v))
	case []byte:
		// 3 字节视为 BINARY(3) 列中的原始字节。文本 OUI 最短 6 个字符，不会冲突。
		if len(v) == OUILen {
			copy(o.bytes[:], v)
			return nil
		}
		return o.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidOUI, src)
	}
}
