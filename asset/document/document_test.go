package document

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<lxs>
    <!-- comment -->
    <scene root="demo" axis_length="5"/>
    <views default="cam">
        <perspective id="cam" near="0.1" far="500" angle="45">
            <from x="30" y="15" z="30"/>
            <to x="0" y="-2" z="0"/>
        </perspective>
    </views>
</lxs>`

	root, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}

	if root.Name != "lxs" {
		t.Fatalf("expected root to be lxs; got %s", root.Name)
	}
	expNames := []string{"scene", "views"}
	names := root.ChildNames()
	if len(names) != len(expNames) || names[0] != expNames[0] || names[1] != expNames[1] {
		t.Fatalf("expected child names %v; got %v", expNames, names)
	}
	if root.Index("views") != 1 || root.Index("lights") != -1 {
		t.Fatalf("unexpected child indices: views=%d lights=%d", root.Index("views"), root.Index("lights"))
	}

	persp := root.Child("views").Child("perspective")
	if persp == nil || len(persp.Children) != 2 {
		t.Fatalf("expected perspective node with 2 children; got %#+v", persp)
	}
	if persp.Line != 6 {
		t.Fatalf("expected perspective to be defined at line 6; got %d", persp.Line)
	}
}

func TestParseLatin1(t *testing.T) {
	payload := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<lxs><scene root=\"caf\xe9\"/></lxs>"

	root, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}

	rootID, ok := GetString(root.Child("scene"), "root")
	if !ok || rootID != "café" {
		t.Fatalf("expected root id to be café; got %q", rootID)
	}
}

func TestParseErrors(t *testing.T) {
	specs := []string{
		"",
		"<lxs><scene></lxs>",
	}

	for idx, payload := range specs {
		if _, err := Parse(strings.NewReader(payload)); err == nil {
			t.Fatalf("[spec %d] expected to get a parse error", idx)
		}
	}
}

func TestAccessors(t *testing.T) {
	node := &Node{
		Name: "test",
		Attrs: []Attr{
			{"id", "foo"},
			{"f", " 3.5 "},
			{"nan", "NaN"},
			{"inf", "+Inf"},
			{"bad", "abc"},
			{"t", "true"},
			{"one", "1"},
			{"f0", "FALSE"},
			{"maybe", "yes"},
		},
	}

	if v, ok := GetString(node, "id"); !ok || v != "foo" {
		t.Fatalf("expected id to be foo; got %q (%t)", v, ok)
	}
	if _, ok := GetString(node, "missing"); ok {
		t.Fatal("expected missing string attribute to fail")
	}

	type floatSpec struct {
		attr  string
		out   float32
		expOk bool
	}
	for idx, s := range []floatSpec{
		{"f", 3.5, true},
		{"nan", 0, false},
		{"inf", 0, false},
		{"bad", 0, false},
		{"missing", 0, false},
	} {
		v, ok := GetFloat(node, s.attr)
		if ok != s.expOk || v != s.out {
			t.Fatalf("[spec %d] expected (%f, %t); got (%f, %t)", idx, s.out, s.expOk, v, ok)
		}
	}

	type boolSpec struct {
		attr  string
		out   bool
		expOk bool
	}
	for idx, s := range []boolSpec{
		{"t", true, true},
		{"one", true, true},
		{"f0", false, true},
		{"maybe", false, false},
		{"missing", false, false},
	} {
		v, ok := GetBoolean(node, s.attr)
		if ok != s.expOk || v != s.out {
			t.Fatalf("[spec %d] expected (%t, %t); got (%t, %t)", idx, s.out, s.expOk, v, ok)
		}
	}

	var nilNode *Node
	if _, ok := GetString(nilNode, "id"); ok {
		t.Fatal("expected lookups on a nil node to fail")
	}
}
