package symdiff

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// MaxToolDiffOrder caps n for the diffn tool. Repeated differentiation of
// sin or cos grows the tree on every pass, so the cost of one call is
// quadratic in n.
const MaxToolDiffOrder = 64

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result    interface{} `json:"result,omitempty"`
	LaTeX     string      `json:"latex,omitempty"`
	String    string      `json:"string,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind ErrorKind   `json:"error_kind,omitempty"`
}

func errorResponse(err error) ToolResponse {
	resp := ToolResponse{Error: err.Error()}
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		resp.ErrorKind = ae.Kind
	}
	return resp
}

// HandleToolCall runs one tool against JSON-decoded parameters. Failures are
// reported in the response, never returned or panicked.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getVariable := func(key string) (Variable, error) {
		v, ok := req.Params[key]
		if !ok {
			return Variable{}, fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return Variable{}, fmt.Errorf("param %s must be a non-empty string", key)
		}
		return S(s), nil
	}
	// env is optional and defaults to EmptyEnv.
	getEnv := func(key string) (Env, error) {
		v, ok := req.Params[key]
		if !ok || v == nil {
			return EmptyEnv, nil
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be an object of name to number", key)
		}
		env := make(Env, len(raw))
		for name, val := range raw {
			f, err := ParseNumber(val)
			if err != nil {
				return nil, fmt.Errorf("param %s[%q]: %w", key, name, err)
			}
			env[S(name)] = N(f)
		}
		return env, nil
	}
	getInt := func(key string) (int, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok || f != float64(int(f)) {
			return 0, fmt.Errorf("param %s must be an integer", key)
		}
		return int(f), nil
	}
	respond := func(e Expr, err error) ToolResponse {
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: e.toJSON(), LaTeX: LaTeX(e), String: String(e)}
	}

	switch req.Tool {
	case "substitute", "evaluate":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		env, err := getEnv("env")
		if err != nil {
			return errorResponse(err)
		}
		if req.Tool == "substitute" {
			return respond(Substitute(e, env), nil)
		}
		return respond(Evaluate(e, env))

	case "simplify":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		return respond(Simplify(e))

	case "differentiate", "diff":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		v, err := getVariable("var")
		if err != nil {
			return errorResponse(err)
		}
		if req.Tool == "differentiate" {
			return respond(Differentiate(e, v), nil)
		}
		return respond(Diff(e, v))

	case "diffn":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		v, err := getVariable("var")
		if err != nil {
			return errorResponse(err)
		}
		n, err := getInt("n")
		if err != nil {
			return errorResponse(err)
		}
		if n < 0 || n > MaxToolDiffOrder {
			return errorResponse(fmt.Errorf("param n must be between 0 and %d, got %d", MaxToolDiffOrder, n))
		}
		return respond(DiffN(e, v, n))

	case "free_variables":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		names := make([]string, 0)
		for name := range FreeVariables(e) {
			names = append(names, name)
		}
		sort.Strings(names)
		return ToolResponse{Result: names, String: fmt.Sprint(names)}

	case "to_latex":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: LaTeX(e), LaTeX: LaTeX(e), String: String(e)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("substitute", "Replace bound variables with values, without simplifying", []string{"expr"}, map[string]string{"expr": "object", "env": "object"}),
		ts("simplify", "Fold constants and remove identities in one bottom-up pass", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("evaluate", "Substitute env, then simplify", []string{"expr"}, map[string]string{"expr": "object", "env": "object"}),
		ts("differentiate", "Symbolic derivative d/dvar, unsimplified", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string"}),
		ts("diff", "Symbolic derivative d/dvar, simplified", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string"}),
		ts("diffn", "nth derivative. Requires n (int, 0 to 64)", []string{"expr", "var", "n"}, map[string]string{"expr": "object", "var": "string", "n": "integer"}),
		ts("free_variables", "Return variable names, sorted", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("to_latex", "Convert to LaTeX", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
