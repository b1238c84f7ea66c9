package symdiff_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symdiff"
)

func call(tool string, params map[string]interface{}) symdiff.ToolResponse {
	return symdiff.HandleToolCall(symdiff.ToolRequest{Tool: tool, Params: params})
}

func TestHandleToolCall_Evaluate(t *testing.T) {
	resp := call("evaluate", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.AddOf(x, symdiff.N(3))),
		"env":  map[string]interface{}{"x": 2.0},
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "5", resp.String)
	assert.Equal(t, "5", resp.LaTeX)
	assert.Equal(t, map[string]interface{}{"type": "value", "value": "5"}, resp.Result)
}

func TestHandleToolCall_EvaluateWithoutEnv(t *testing.T) {
	resp := call("evaluate", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.MulOf(symdiff.N(1), symdiff.CosOf(y))),
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "cos(y)", resp.String)
}

func TestHandleToolCall_Substitute(t *testing.T) {
	resp := call("substitute", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.AddOf(x, y)),
		"env":  map[string]interface{}{"x": 2.0, "y": "3"},
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "2 + 3", resp.String)
}

func TestHandleToolCall_Simplify(t *testing.T) {
	resp := call("simplify", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.AddOf(symdiff.N(0), x)),
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "x", resp.String)
}

func TestHandleToolCall_DivisionByZero(t *testing.T) {
	resp := call("simplify", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.DivOf(x, symdiff.N(0))),
	})
	assert.Equal(t, "[DivisionByZero] x/0", resp.Error)
	assert.Equal(t, symdiff.KindDivisionByZero, resp.ErrorKind)
	assert.Nil(t, resp.Result)
}

func TestHandleToolCall_Diff(t *testing.T) {
	resp := call("diff", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.SinOf(x)),
		"var":  "x",
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "cos(x)", resp.String)
	assert.Equal(t, `\cos\left(x\right)`, resp.LaTeX)
}

func TestHandleToolCall_Differentiate(t *testing.T) {
	resp := call("differentiate", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.SinOf(x)),
		"var":  "x",
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "cos(x)*1", resp.String)
}

func TestHandleToolCall_DiffN(t *testing.T) {
	resp := call("diffn", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.PowOf(x, symdiff.N(3))),
		"var":  "x",
		"n":    2.0,
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "3*(2*x)", resp.String)

	resp = call("diffn", map[string]interface{}{
		"expr": symdiff.ToJSONMap(x),
		"var":  "x",
		"n":    1.5,
	})
	assert.Equal(t, "param n must be an integer", resp.Error)

	resp = call("diffn", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.SinOf(x)),
		"var":  "x",
		"n":    float64(symdiff.MaxToolDiffOrder),
	})
	require.Empty(t, resp.Error)

	for _, n := range []float64{symdiff.MaxToolDiffOrder + 1, 20000, 1e9, -1} {
		resp = call("diffn", map[string]interface{}{
			"expr": symdiff.ToJSONMap(symdiff.SinOf(x)),
			"var":  "x",
			"n":    n,
		})
		assert.Contains(t, resp.Error, "param n must be between 0 and 64", "n=%v", n)
		assert.Nil(t, resp.Result, "n=%v", n)
	}
}

func TestHandleToolCall_FreeVariables(t *testing.T) {
	resp := call("free_variables", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.AddOf(y, symdiff.MulOf(x, y))),
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, []string{"x", "y"}, resp.Result)
}

func TestHandleToolCall_ToLaTeX(t *testing.T) {
	resp := call("to_latex", map[string]interface{}{
		"expr": symdiff.ToJSONMap(symdiff.DivOf(x, y)),
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, `\frac{x}{y}`, resp.Result)
}

func TestHandleToolCall_BadParams(t *testing.T) {
	cases := []struct {
		tool    string
		params  map[string]interface{}
		wantErr string
	}{
		{"simplify", map[string]interface{}{}, "missing param: expr"},
		{"simplify", map[string]interface{}{"expr": "x"}, "invalid type for param expr"},
		{"diff", map[string]interface{}{"expr": symdiff.ToJSONMap(x)}, "missing param: var"},
		{"diff", map[string]interface{}{"expr": symdiff.ToJSONMap(x), "var": ""}, "param var must be a non-empty string"},
		{"evaluate", map[string]interface{}{"expr": symdiff.ToJSONMap(x), "env": []interface{}{}}, "param env must be an object of name to number"},
		{"evaluate", map[string]interface{}{"expr": symdiff.ToJSONMap(x), "env": map[string]interface{}{"x": "abc"}}, `param env["x"]: invalid number "abc"`},
		{"nonexistent", map[string]interface{}{}, "unknown tool: nonexistent"},
	}
	for _, tc := range cases {
		resp := call(tc.tool, tc.params)
		assert.Equal(t, tc.wantErr, resp.Error, tc.tool)
		assert.Empty(t, resp.ErrorKind)
	}
}

func TestMCPToolSpec(t *testing.T) {
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(symdiff.MCPToolSpec()), &spec))

	names := make([]string, len(spec.Tools))
	for i, tool := range spec.Tools {
		names[i] = tool.Name
	}
	assert.Subset(t, names, []string{"substitute", "simplify", "evaluate", "differentiate", "diff", "diffn"})

	// Every advertised tool is dispatched.
	for _, name := range names {
		resp := call(name, map[string]interface{}{})
		assert.NotEqual(t, "unknown tool: "+name, resp.Error)
	}
}
