package gedcom

import (
	"fmt"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"

	"github.com/expr-lang/expr"
)

// Query filters the document's elements with an expr program that
// evaluates to a bool per element. The environment exposes level,
// pointer, tag, value and kind, e.g.
//
//	tag == "INDI"
//	level == 1 && value matches "1850"
//
// Results are in document order; the synthetic root is not visited.
func (d *Document) Query(code string) ([]*element.Element, error) {
	prg, err := expr.Compile(code, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", code, err)
	}
	var res []*element.Element
	err = d.root.Visit(func(e *element.Element, isPost bool) (bool, error) {
		if isPost || e.Level < 0 {
			return true, nil
		}
		env := map[string]any{
			"level":   e.Level,
			"pointer": e.Pointer,
			"tag":     e.Tag,
			"value":   e.Value,
			"kind":    e.Kind().String(),
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return false, fmt.Errorf("running query %q: %w", code, err)
		}
		if b, ok := out.(bool); ok && b {
			res = append(res, e)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
