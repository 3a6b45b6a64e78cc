package vals

import (
	"math"
	"testing"

	"github.com/headius/hamster/pkg/persistent/hash"
	"github.com/headius/hamster/pkg/tt"
)

type hasher struct{}

func (hasher) Hash() uint32 { return 42 }

type nonHasher struct{}

func TestHash(t *testing.T) {
	tt.Test(t, tt.Fn("Hash", Hash), tt.Table{
		tt.Args(false).Rets(uint32(0)),
		tt.Args(true).Rets(uint32(1)),
		tt.Args(1).Rets(hash.UIntPtr(1)),
		tt.Args(1.0).Rets(hash.UInt64(math.Float64bits(1.0))),
		tt.Args("foo").Rets(hash.String("foo")),
		tt.Args(hasher{}).Rets(uint32(42)),
		tt.Args(nonHasher{}).Rets(uint32(0)),
	})
}
