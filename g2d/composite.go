package g2d

import "fmt"

// CompositeRule is a Porter-Duff rule code, numbered as in the legacy API.
type CompositeRule int

// Porter-Duff rules.
const (
	RuleClear   CompositeRule = 1
	RuleSrc     CompositeRule = 2
	RuleSrcOver CompositeRule = 3
	RuleDstOver CompositeRule = 4
	RuleSrcIn   CompositeRule = 5
	RuleDstIn   CompositeRule = 6
	RuleSrcOut  CompositeRule = 7
	RuleDstOut  CompositeRule = 8
	RuleDst     CompositeRule = 9
	RuleSrcAtop CompositeRule = 10
	RuleDstAtop CompositeRule = 11
	RuleXor     CompositeRule = 12
)

var ruleNames = map[CompositeRule]string{
	RuleClear: "CLEAR", RuleSrc: "SRC", RuleSrcOver: "SRC_OVER", RuleDstOver: "DST_OVER",
	RuleSrcIn: "SRC_IN", RuleDstIn: "DST_IN", RuleSrcOut: "SRC_OUT", RuleDstOut: "DST_OUT",
	RuleDst: "DST", RuleSrcAtop: "SRC_ATOP", RuleDstAtop: "DST_ATOP", RuleXor: "XOR",
}

// String returns the legacy rule name.
func (r CompositeRule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("CompositeRule(%d)", int(r))
}

// AlphaComposite combines a Porter-Duff rule with an extra alpha applied to
// the source.
type AlphaComposite struct {
	Rule  CompositeRule
	Alpha float64
}

// SrcOver is the default composite.
var SrcOver = AlphaComposite{Rule: RuleSrcOver, Alpha: 1}

// NewAlphaComposite returns a composite with alpha clamped to [0, 1].
func NewAlphaComposite(rule CompositeRule, alpha float64) AlphaComposite {
	alpha = max(0, min(1, alpha))
	return AlphaComposite{Rule: rule, Alpha: alpha}
}

// String formats the composite as RULE@alpha.
func (c AlphaComposite) String() string {
	return fmt.Sprintf("%s@%g", c.Rule, c.Alpha)
}
