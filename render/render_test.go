package render

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/schema"
	"github.com/teranos/astgen/target"
)

const lexing = "github.com/teranos/lox/lexing"

func binaryFamily(t *testing.T) *schema.Family {
	t.Helper()
	family, err := schema.NewBuilder("parsing", "Expr").
		Import(lexing).
		Node("Binary",
			schema.Required("Left", "Expr"),
			schema.Required("Operator", "lexing.Token"),
			schema.Required("Right", "Expr"),
		).
		Build()
	require.NoError(t, err)
	return family
}

func varFamily(t *testing.T) *schema.Family {
	t.Helper()
	family, err := schema.NewBuilder("parsing", "Stmt").
		Import(lexing).
		Node("Var",
			schema.Defaulted("Initializer", "Expr", "nil"),
			schema.Required("Name", "lexing.Token"),
		).
		Build()
	require.NoError(t, err)
	return family
}

func TestRender_Binary(t *testing.T) {
	r := NewRenderer(nil)
	family := binaryFamily(t)

	tests := []struct {
		target *target.Target
		want   []string
	}{
		{target.Go, []string{
			"// Code generated by astgen; DO NOT EDIT.",
			"package parsing",
			`"github.com/teranos/lox/lexing"`,
			"func NewBinary(left Expr, operator lexing.Token, right Expr) *Binary {",
			"VisitBinary(binary *Binary) any",
		}},
		{target.CSharp, []string{
			"using Lexing;",
			"namespace Parsing",
			"public Binary(Expr left, Token @operator, Expr right)",
			"Operator = @operator;",
			"public T VisitBinary(Expr.Binary binary);",
		}},
		{target.Python, []string{
			"import lexing",
			"class Binary(Expr):\n    left: Expr\n    operator: lexing.Token\n    right: Expr\n",
			"def visit_binary(self, binary: Binary) -> T: ...",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target.Name, func(t *testing.T) {
			out, err := r.Render(family, tt.target)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, string(out), want)
			}
		})
	}
}

func TestRender_DefaultedFieldComesLast(t *testing.T) {
	r := NewRenderer(nil)
	family := varFamily(t)

	tests := []struct {
		target *target.Target
		want   []string
	}{
		{target.Go, []string{
			"func NewVar(name lexing.Token) *Var {",
			"Initializer: nil,",
		}},
		{target.CSharp, []string{
			"public Var(Token name, Expr? initializer = null)",
			"public Expr? Initializer { get; set; }",
		}},
		{target.Python, []string{
			"    name: lexing.Token\n    initializer: Optional[Expr] = None\n",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target.Name, func(t *testing.T) {
			out, err := r.Render(family, tt.target)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, string(out), want)
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := NewRenderer(nil)
	for _, tgt := range target.All() {
		t.Run(tgt.Name, func(t *testing.T) {
			first, err := r.Render(binaryFamily(t), tgt)
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, err := r.Render(binaryFamily(t), tgt)
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		})
	}
}

func TestRender_RegistrationOrderIrrelevant(t *testing.T) {
	forward, err := schema.NewBuilder("parsing", "Expr").
		Import(lexing, "github.com/teranos/lox/runtime").
		Node("Unary", schema.Required("Operator", "lexing.Token"), schema.Required("Right", "Expr")).
		Node("Grouping", schema.Required("Expression", "Expr")).
		Node("Literal", schema.Required("Value", "any")).
		Build()
	require.NoError(t, err)

	reverse, err := schema.NewBuilder("parsing", "Expr").
		Node("Literal", schema.Required("Value", "any")).
		Node("Grouping", schema.Required("Expression", "Expr")).
		Node("Unary", schema.Required("Operator", "lexing.Token"), schema.Required("Right", "Expr")).
		Import("github.com/teranos/lox/runtime", lexing).
		Build()
	require.NoError(t, err)

	r := NewRenderer(nil)
	for _, tgt := range target.All() {
		a, err := r.Render(forward, tgt)
		require.NoError(t, err)
		b, err := r.Render(reverse, tgt)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), tgt.Name)
	}
}

func TestRender_GoOutputParses(t *testing.T) {
	family, err := schema.NewBuilder("parsing", "Stmt").
		Import(lexing).
		Node("If",
			schema.Required("Condition", "Expr"),
			schema.Required("Then", "Stmt"),
			schema.Defaulted("Else", "Stmt", "nil"),
		).
		Node("Block", schema.Required("Statements", "[]Stmt")).
		Node("Break").
		Node("Function",
			schema.Required("Name", "lexing.Token"),
			schema.Required("Params", "[]lexing.Token"),
			schema.Required("Body", "[]Stmt"),
			schema.Required("Type", "map[string]Expr"),
		).
		Build()
	require.NoError(t, err)

	out, err := NewRenderer(nil).Render(family, target.Go)
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "stmt.go", out, parser.ParseComments)
	require.NoError(t, err, string(out))
	assert.Equal(t, "parsing", f.Name.Name)
	assert.Contains(t, string(out), "func NewFunction(name lexing.Token, params []lexing.Token, body []Stmt, type_ map[string]Expr) *Function {")
	assert.Contains(t, string(out), "VisitIf(if_ *If) any")
	assert.Contains(t, string(out), "VisitBreak(break_ *Break) any")
}

func TestRender_GoPredeclaredFieldNames(t *testing.T) {
	family, err := schema.NewBuilder("parsing", "Expr").
		Node("Pair",
			schema.Required("Nil", "bool"),
			schema.Defaulted("Flag", "bool", "false"),
			schema.Defaulted("Next", "Expr", "nil"),
		).
		Node("Expression", schema.Required("True", "Expr")).
		Build()
	require.NoError(t, err)

	out, err := NewRenderer(nil).Render(family, target.Go)
	require.NoError(t, err)
	src := string(out)

	_, err = parser.ParseFile(token.NewFileSet(), "expr.go", out, 0)
	require.NoError(t, err, src)
	assert.Contains(t, src, "func NewPair(nil_ bool) *Pair {")
	assert.Regexp(t, `Nil:\s+nil_,`, src)
	assert.Regexp(t, `Next:\s+nil,`, src)
	assert.Contains(t, src, "func NewExpression(true_ Expr) *Expression {")
	assert.Contains(t, src, "// NewExpression returns a new Expression.\n")
	assert.Contains(t, src, "// NewPair returns a new Pair with Flag set to false, Next set to nil.\n")
}

func TestRender_MissingBindingIsTemplateError(t *testing.T) {
	tgt := *target.CSharp
	tgt.Template = "namespace {{ .Namespace }} uses {{ .ExternalRuntime }}"

	out, err := NewRenderer(nil).Render(binaryFamily(t), &tgt)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.IsTemplateError(err), "got %v", err)
	assert.False(t, errors.IsRenderError(err))
}

func TestRender_MissingMapKeyIsTemplateError(t *testing.T) {
	_, err := NewTextEngine().Execute("map", "{{ .runtime }}", map[string]string{"lexing": lexing})
	require.Error(t, err)
	assert.True(t, errors.IsTemplateError(err))
}

func TestRender_RenderErrors(t *testing.T) {
	badTypes, err := schema.NewBuilder("parsing", "Expr").
		Node("Call", schema.Required("Arguments", "List<Expr>")).
		Build()
	require.NoError(t, err)

	malformed := *target.Python
	malformed.Template = "{{ range .Nodes }}"

	invalidGo := *target.Go
	invalidGo.Template = "package {{ .Namespace }}\nfunc {"

	failing := *target.Python
	failing.Template = `{{ index .Nodes 7 }}`

	tests := []struct {
		name   string
		family *schema.Family
		target *target.Target
	}{
		{"unparseable type reference", badTypes, target.CSharp},
		{"malformed template", binaryFamily(t), &malformed},
		{"formatter rejects output", binaryFamily(t), &invalidGo},
		{"execution failure", binaryFamily(t), &failing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewRenderer(nil).Render(tt.family, tt.target)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsRenderError(err), "got %v", err)
			assert.False(t, errors.IsTemplateError(err))
		})
	}
}

type recordingEngine struct {
	name     string
	bindings any
}

func (e *recordingEngine) Execute(name, source string, bindings any) ([]byte, error) {
	e.name = name
	e.bindings = bindings
	return []byte("rendered"), nil
}

func TestRenderer_UsesInjectedEngine(t *testing.T) {
	engine := &recordingEngine{}
	tgt := *target.Python

	out, err := NewRenderer(engine).Render(binaryFamily(t), &tgt)
	require.NoError(t, err)
	assert.Equal(t, "rendered", string(out))
	assert.Equal(t, "python.tmpl", engine.name)

	b, ok := engine.bindings.(*Bindings)
	require.True(t, ok)
	assert.Equal(t, "Expr", b.Root)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, []string{"left", "operator", "right"}, params(b.Nodes[0].Params))
}

func TestBind(t *testing.T) {
	b, err := Bind(varFamily(t), target.CSharp)
	require.NoError(t, err)

	assert.Equal(t, Header, b.Header)
	assert.Equal(t, "Parsing", b.Namespace)
	assert.Equal(t, "stmt", b.RootParam)
	assert.Equal(t, []Import{{Path: lexing, Name: "Lexing"}}, b.Imports)

	require.Len(t, b.Nodes, 1)
	node := b.Nodes[0]
	assert.Equal(t, "var", node.Param)
	assert.Equal(t, []string{"initializer", "name"}, params(node.Fields))
	assert.Equal(t, []string{"name", "initializer"}, params(node.Params))
	assert.Equal(t, []string{"name"}, params(node.Required))
	assert.Equal(t, []string{"initializer"}, params(node.Defaulted))

	init := node.Defaulted[0]
	assert.True(t, init.Nullable)
	assert.Equal(t, "Expr?", init.Type)
	assert.Equal(t, "null", init.Default)
}

func TestBind_NilInputs(t *testing.T) {
	_, err := Bind(nil, target.Go)
	assert.True(t, errors.IsRenderError(err))

	_, err = Bind(binaryFamily(t), nil)
	assert.True(t, errors.IsRenderError(err))
}

func params(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Param
	}
	return out
}

func TestDescribeEncode(t *testing.T) {
	snap, err := Describe(varFamily(t), target.Python)
	require.NoError(t, err)
	require.Len(t, snap.Shapes, 1)
	assert.Equal(t, []string{"name", "initializer"}, snap.Shapes[0].Constructor)

	t.Run("yaml", func(t *testing.T) {
		data, err := Encode(snap, "yaml")
		require.NoError(t, err)
		var got Snapshot
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, *snap, got)
	})

	t.Run("json", func(t *testing.T) {
		data, err := Encode(snap, "JSON")
		require.NoError(t, err)
		var got Snapshot
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *snap, got)
	})

	t.Run("toml", func(t *testing.T) {
		data, err := Encode(snap, "toml")
		require.NoError(t, err)
		var got Snapshot
		_, err = toml.Decode(string(data), &got)
		require.NoError(t, err)
		assert.Equal(t, "python", got.Target)
		assert.Equal(t, "Optional[Expr]", got.Shapes[0].Fields[0].Type)
		assert.Equal(t, "None", got.Shapes[0].Fields[0].Default)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Encode(snap, "xml")
		require.Error(t, err)
		assert.Contains(t, errors.FlattenHints(err), "yaml")
	})
}
