package util

import "strconv"

// MustParseUint 解析路径参数里的数字ID,非法输入当 0 处理,
// 后续查库自然404
func MustParseUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
