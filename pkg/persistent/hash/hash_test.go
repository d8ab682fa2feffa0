package hash

import (
	"math"
	"testing"

	"github.com/migl/conslist/pkg/tt"
)

func TestHashFunctions(t *testing.T) {
	tt.Test(t, tt.Fn("DJBCombine", DJBCombine), tt.Table{
		tt.Args(uint32(0), uint32(7)).Rets(uint32(7)),
		tt.Args(uint32(1), uint32(0)).Rets(uint32(33)),
		tt.Args(DJBInit, uint32(0)).Rets(uint32(5381 * 33)),
	})
	tt.Test(t, tt.Fn("Bool", Bool), tt.Table{
		tt.Args(true).Rets(uint32(1)),
		tt.Args(false).Rets(uint32(0)),
	})
	tt.Test(t, tt.Fn("UInt64", UInt64), tt.Table{
		tt.Args(uint64(0)).Rets(uint32(0)),
		tt.Args(uint64(42)).Rets(uint32(42)),
		tt.Args(uint64(1) << 32).Rets(uint32(33)),
	})
	tt.Test(t, tt.Fn("String", String), tt.Table{
		tt.Args("").Rets(DJBInit),
		tt.Args("a").Rets(DJBInit*33 + 'a'),
	})
}

func TestFloat64_ZeroesHashTheSame(t *testing.T) {
	if Float64(0) != Float64(math.Copysign(0, -1)) {
		t.Errorf("Float64(0) != Float64(-0)")
	}
	if Float64(1.5) == Float64(-1.5) {
		t.Errorf("Float64(1.5) == Float64(-1.5)")
	}
}
