package vals

import (
	"math"
	"testing"

	"github.com/headius/hamster/pkg/tt"
)

func TestCmp(t *testing.T) {
	tt.Test(t, tt.Fn("Cmp", Cmp), tt.Table{
		tt.Args(nil, nil).Rets(CmpEqual),
		tt.Args(nil, 1).Rets(CmpUncomparable),

		tt.Args(false, true).Rets(CmpLess),
		tt.Args(true, true).Rets(CmpEqual),
		tt.Args(true, false).Rets(CmpMore),
		tt.Args(true, 1).Rets(CmpUncomparable),

		tt.Args(1, 2).Rets(CmpLess),
		tt.Args(2, 2).Rets(CmpEqual),
		tt.Args(3, 2).Rets(CmpMore),
		tt.Args(1, 1.5).Rets(CmpLess),
		tt.Args(2.5, 2).Rets(CmpMore),
		tt.Args(1.0, 1.0).Rets(CmpEqual),
		tt.Args(math.NaN(), 1.0).Rets(CmpLess),
		tt.Args(1.0, math.NaN()).Rets(CmpMore),
		tt.Args(math.NaN(), math.NaN()).Rets(CmpEqual),

		tt.Args("a", "b").Rets(CmpLess),
		tt.Args("b", "b").Rets(CmpEqual),
		tt.Args("c", "b").Rets(CmpMore),
		tt.Args("a", 1).Rets(CmpUncomparable),

		tt.Args([]int{1}, []int{1}).Rets(CmpEqual),
		tt.Args([]int{1}, []int{2}).Rets(CmpUncomparable),
	})
}
