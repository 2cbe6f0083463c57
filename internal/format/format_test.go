package format_test

import (
	"context"
	"testing"

	"gdtoolkit/internal/format"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/parser"
	"gdtoolkit/internal/source"
)

func formatSource(t *testing.T, src string, opts format.Options) string {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.gd", []byte(src)))
	lx := lexer.New(file, lexer.Options{})
	res := parser.ParseFile(context.Background(), file, indent.New(lx, indent.Options{}), parser.Options{})
	if res.Tree == nil {
		for _, d := range res.Bag.Items() {
			t.Logf("%s: %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse failed for %q", src)
	}
	out, err := format.FormatFile(file, res.Tree, lx.Comments(), opts)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	return string(out)
}

func TestFormatFile_Golden(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts format.Options
		want string
	}{
		{
			name: "spacing and inline bodies",
			src:  "extends Node\nvar a=1\nfunc f( x,y ):\n\tif x:   pass\n\telif y: return 1\n\telse:\n\t\treturn  2\n",
			want: "extends Node\nvar a = 1\nfunc f(x, y):\n\tif x:\n\t\tpass\n\telif y:\n\t\treturn 1\n\telse:\n\t\treturn 2\n",
		},
		{
			name: "blank lines and comments",
			src:  "# header\n\n\nextends Node\n\n\n\nvar a # trailing\nfunc f():\n\n\t# inside\n\tpass\n\n\n\tpass\n# end\n",
			want: "# header\n\n\nextends Node\n\n\nvar a  # trailing\nfunc f():\n\t# inside\n\tpass\n\n\tpass\n# end\n",
		},
		{
			name: "class level statements",
			src:  "tool\nsignal hit(a,b)\nexport(int) var x:int=1\nonready var y := $A/B\nstatic func g()->int:\n\treturn -x\n",
			want: "tool\nsignal hit(a, b)\nexport(int) var x: int = 1\nonready var y := $A/B\nstatic func g() -> int:\n\treturn -x\n",
		},
		{
			name: "inner class with enum and constant",
			src:  "class Inner extends Reference:\n\tenum {A, B=2}\n\tconst X:=1\n",
			want: "class Inner extends Reference:\n\tenum {A, B = 2}\n\tconst X := 1\n",
		},
		{
			name: "comment before else",
			src:  "func f():\n\tif a:\n\t\tpass\n\t# about else\n\telse:\n\t\tpass\n",
			want: "func f():\n\tif a:\n\t\tpass\n\t# about else\n\telse:\n\t\tpass\n",
		},
		{
			name: "long call is exploded",
			src:  "func f():\n\tfoo(alpha, beta, gamma)\n",
			opts: format.Options{LineLength: 20},
			want: "func f():\n\tfoo(\n\t\talpha,\n\t\tbeta,\n\t\tgamma\n\t)\n",
		},
		{
			name: "long dictionary is exploded",
			src:  "var d = {\"a\": [1, 2], b = 3}\n",
			opts: format.Options{LineLength: 20},
			want: "var d = {\n\t\"a\": [1, 2],\n\tb = 3\n}\n",
		},
		{
			name: "short multi-line array is joined",
			src:  "var a = [\n\t1,  # one\n\t2,\n]\n",
			want: "var a = [1, 2]  # one\n",
		},
		{
			name: "comment inside a joined statement",
			src:  "var a = [\n\t# first\n\t1,\n]\n",
			want: "var a = [1]\n# first\n",
		},
		{
			name: "block lambda in call",
			src:  "func f():\n\tfoo(func():\n\t\tbar()\n\t, 2)\n",
			want: "func f():\n\tfoo(\n\t\tfunc():\n\t\t\tbar(),\n\t\t2\n\t)\n",
		},
		{
			name: "block lambda as value",
			src:  "var g = func():\n\tpass\n",
			want: "var g = func():\n\tpass\n",
		},
		{
			name: "inline lambda stays inline",
			src:  "func f():\n\tarr.map(func(v):   return v*2)\n",
			want: "func f():\n\tarr.map(func(v): return v * 2)\n",
		},
		{
			name: "comment on header",
			src:  "func f(): # c\n\tpass\n",
			want: "func f():  # c\n\tpass\n",
		},
		{
			name: "spaces indentation",
			src:  "func f():\n\twhile true:\n\t\tbreak\n",
			opts: format.Options{UseSpaces: true, IndentWidth: 2},
			want: "func f():\n  while true:\n    break\n",
		},
		{
			name: "operators",
			src:  "func f():\n\tx+=a if not b else c\n\tfor i in range(3):\n\t\ty = (i+1)*2 as int\n",
			want: "func f():\n\tx += a if not b else c\n\tfor i in range(3):\n\t\ty = (i + 1) * 2 as int\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSource(t, tt.src, tt.opts)
			if got != tt.want {
				t.Errorf("output mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestFormatFile_Idempotent(t *testing.T) {
	src := "# Player controller\nextends KinematicBody2D\n\n" +
		"signal died\n\nconst SPEED := 200\nvar velocity = Vector2()\n\n\n" +
		"func _ready():\n\tconnect(\"died\", self, \"_on_died\")  # wire\n\n" +
		"func _physics_process(delta: float) -> void:\n\tvar input = {\"left\": Input.is_action_pressed(\"ui_left\"), " +
		"\"right\": Input.is_action_pressed(\"ui_right\")}\n\tif input.left:\n\t\tvelocity.x = -SPEED\n" +
		"\telif input.right:\n\t\tvelocity.x = SPEED\n\tcall_deferred(func():\n\t\tprint(delta)\n\t\tprint(velocity)\n\t)\n"
	once := formatSource(t, src, format.Options{})
	twice := formatSource(t, once, format.Options{})
	if once != twice {
		t.Errorf("formatting is not stable\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestFormatFile_Empty(t *testing.T) {
	if got := formatSource(t, "", format.Options{}); got != "" {
		t.Errorf("empty file formatted to %q", got)
	}
	if got := formatSource(t, "# only\n", format.Options{}); got != "# only\n" {
		t.Errorf("comment-only file formatted to %q", got)
	}
}
