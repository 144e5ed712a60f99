package cast

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is a type constraint matching the integer types accepted by both
// [cast.ToE] and [safemath.ConvertAny].
type Integer interface {
	cast.Basic
	safemath.Integer
}
