package symdiff

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================
//
// A tree is encoded as nested objects tagged by "type":
//
//	{"type": "value", "value": "2.5"}
//	{"type": "variable", "name": "x"}
//	{"type": "plus", "x": {...}, "y": {...}}   also minus, multiply, divide, pow
//	{"type": "sin", "x": {...}}                also cos, exp
//
// Literal values are written as strings so NaN and ±Inf survive the trip;
// FromJSON accepts plain numbers as well.

// ToJSON encodes e.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// ToJSONMap returns the decoded object form of e, ready to embed in a
// larger JSON document.
func ToJSONMap(e Expr) map[string]interface{} { return e.toJSON() }

func (n Value) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": n.exprType(), "value": formatFloat(n.V)}
}

func (s Variable) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": s.exprType(), "name": s.Name}
}

func binaryJSON(e Expr, x, y Expr) map[string]interface{} {
	return map[string]interface{}{"type": e.exprType(), "x": x.toJSON(), "y": y.toJSON()}
}

func unaryJSON(e Expr, x Expr) map[string]interface{} {
	return map[string]interface{}{"type": e.exprType(), "x": x.toJSON()}
}

func (p Plus) toJSON() map[string]interface{}     { return binaryJSON(p, p.X, p.Y) }
func (m Minus) toJSON() map[string]interface{}    { return binaryJSON(m, m.X, m.Y) }
func (m Multiply) toJSON() map[string]interface{} { return binaryJSON(m, m.X, m.Y) }
func (d Divide) toJSON() map[string]interface{}   { return binaryJSON(d, d.X, d.Y) }
func (p Pow) toJSON() map[string]interface{}      { return binaryJSON(p, p.X, p.Y) }
func (f Sin) toJSON() map[string]interface{}      { return unaryJSON(f, f.X) }
func (f Cos) toJSON() map[string]interface{}      { return unaryJSON(f, f.X) }
func (f Exp) toJSON() map[string]interface{}      { return unaryJSON(f, f.X) }

// ParseJSON decodes a tree from its encoded bytes.
func ParseJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return FromJSON(m)
}

// FromJSON decodes a tree from its object form. The tree is returned exactly
// as written; nothing is simplified.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	sub := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	binary := func() (Expr, Expr, error) {
		x, err := sub("x")
		if err != nil {
			return nil, nil, err
		}
		y, err := sub("y")
		if err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	switch typ {
	case "value":
		v, err := ParseNumber(data["value"])
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		return N(v), nil

	case "variable":
		name, ok := data["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("variable: 'name' must be a non-empty string")
		}
		return S(name), nil

	case "plus", "minus", "multiply", "divide", "pow":
		x, y, err := binary()
		if err != nil {
			return nil, err
		}
		switch typ {
		case "plus":
			return Plus{X: x, Y: y}, nil
		case "minus":
			return Minus{X: x, Y: y}, nil
		case "multiply":
			return Multiply{X: x, Y: y}, nil
		case "divide":
			return Divide{X: x, Y: y}, nil
		}
		return Pow{X: x, Y: y}, nil

	case "sin", "cos", "exp":
		x, err := sub("x")
		if err != nil {
			return nil, err
		}
		switch typ {
		case "sin":
			return Sin{X: x}, nil
		case "cos":
			return Cos{X: x}, nil
		}
		return Exp{X: x}, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

// ParseNumber accepts a JSON number or a string understood by
// strconv.ParseFloat, including "NaN", "Inf" and "-Inf".
func ParseNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("missing number")
	}
	return 0, fmt.Errorf("number must be a JSON number or string, got %T", v)
}
