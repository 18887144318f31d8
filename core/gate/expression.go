// core/gate/expression.go
package gate

// Fixed base penalties per expression system.
var expressionPenalty = map[ExpressionSystem]int{
	ExpressionMammalian: 5,
	ExpressionYeast:     10,
	ExpressionEColi:     12,
	ExpressionCellFree:  8,
}

const (
	unknownSystemPenalty = 10

	// Placeholder codon-bias signal for E. coli protein constructs; a real
	// codon-usage table is out of scope.
	ecoliCodonBiasPenalty = 2

	largeExpressionLen     = 500
	largeExpressionPenalty = 5
	smallExpressionLen     = 50
	smallExpressionPenalty = 8
)

func (e *Engine) scoreExpression(spec CandidateSpec, s string, isProtein bool) (int, []Flag) {
	var flags []Flag

	penalty, ok := expressionPenalty[spec.ExpressionSystem]
	if !ok {
		penalty = unknownSystemPenalty
	}

	if spec.ExpressionSystem == ExpressionEColi && isProtein {
		penalty += ecoliCodonBiasPenalty
	}

	if len(s) > largeExpressionLen {
		penalty += largeExpressionPenalty
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Category: CategoryGeneral,
			Message:  "Large construct may reduce expression levels",
		})
	}
	if len(s) < smallExpressionLen {
		penalty += smallExpressionPenalty
		flags = append(flags, Flag{
			Severity: SeverityWarning,
			Category: CategoryGeneral,
			Message:  "Very small construct; verify it has sufficient structure",
		})
	}

	return floorScore(100 - penalty), flags
}
