// Package changelog implements the classification and aggregation engine that
// turns merge-request metadata into grouped, deterministic changelog text.
// Everything in this package is pure: no I/O, no provider calls, no state
// shared across invocations.
package changelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryclarke/changelog-tool/config"
)

// LabelConvention describes the prefix+separator syntax used to encode a
// semantic category (change-type, product) inside a free-text label.
type LabelConvention struct {
	Prefix    string
	Separator string
}

// TypeConvention returns the configured label convention for the change-type axis.
func TypeConvention(ctx context.Context) LabelConvention {
	viper := config.Viper(ctx)

	return LabelConvention{
		Prefix:    viper.GetString(config.TypePrefix),
		Separator: viper.GetString(config.TypeSeparator),
	}
}

// ProductConvention returns the configured label convention for the product axis.
func ProductConvention(ctx context.Context) LabelConvention {
	viper := config.Viper(ctx)

	return LabelConvention{
		Prefix:    viper.GetString(config.ProductPrefix),
		Separator: viper.GetString(config.ProductSeparator),
	}
}

// Extract scans labels in their given order and returns the trimmed payload
// of the first label matching the convention. The match is case-sensitive and
// exact on the prefix+separator token; label order is treated as opaque and
// never re-sorted here.
func Extract(labels []string, convention LabelConvention) (string, bool) {
	token := convention.Prefix + convention.Separator

	for _, label := range labels {
		if strings.HasPrefix(label, token) {
			return strings.TrimSpace(label[len(token):]), true
		}
	}

	return "", false
}

// DisplayTag implements the single-label shortcut used by the flat listing
// view: a record carrying exactly one label displays that label's raw text
// bracketed, regardless of convention. Any other label count yields no tag.
func DisplayTag(labels []string) string {
	if len(labels) != 1 {
		return ""
	}

	return fmt.Sprintf("[%s]", labels[0])
}
