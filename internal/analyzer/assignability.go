package analyzer

import "github.com/funvibe/faber/internal/semtype"

// assignable implements section 4.2.4: can a value of type src be used
// where dst is expected? Unknown is assignable both ways (a failed
// resolution must not cascade into spurious mismatch diagnostics),
// structurally identical types are always assignable, nihil satisfies any
// nullable target, any alternative of a union target accepts the source,
// and same-named numeric primitives widen (narrower bit-width source into
// wider-or-equal destination; an unspecified width is treated as already
// the widest available).
func assignable(src, dst semtype.Type) bool {
	if src == nil || dst == nil {
		return true
	}
	if _, ok := src.(semtype.Unknown); ok {
		return true
	}
	if _, ok := dst.(semtype.Unknown); ok {
		return true
	}
	if src.String() == dst.String() {
		return true
	}
	if isNihil(src) && isNullable(dst) {
		return true
	}
	if u, ok := dst.(semtype.Union); ok {
		for _, alt := range u.Alternatives {
			if assignable(src, alt) {
				return true
			}
		}
		return false
	}
	if sp, ok := src.(semtype.Primitive); ok {
		if dp, ok := dst.(semtype.Primitive); ok && sp.Name == dp.Name && isNumericName(sp.Name) {
			return widerOrEqual(dp, sp)
		}
	}
	if sg, ok := src.(semtype.Generic); ok {
		if dg, ok := dst.(semtype.Generic); ok && sg.Name == dg.Name && len(sg.Params) == len(dg.Params) {
			for i := range sg.Params {
				if !assignable(sg.Params[i], dg.Params[i]) {
					return false
				}
			}
			return true
		}
	}
	return false
}

func widerOrEqual(dst, src semtype.Primitive) bool {
	if dst.Size == 0 || src.Size == 0 {
		return true
	}
	return dst.Size >= src.Size
}
