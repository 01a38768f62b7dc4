package changelog

import (
	"context"
	"testing"

	testhelper "github.com/ryclarke/changelog-tool/utils/test"
)

// loadFixture loads test configuration (local helper)
func loadFixture(t *testing.T) context.Context {
	return testhelper.LoadFixture(t, "../config")
}

var (
	typeConv    = LabelConvention{Prefix: "CL", Separator: ":"}
	productConv = LabelConvention{Prefix: "P", Separator: ":"}
)
