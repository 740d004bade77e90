package reader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/lxs/asset/scene"
)

const minimalScene = `<lxs>
	<scene root="box" axis_length="2"/>
	<views default="cam">
		<perspective id="cam" near="0.1" far="100" angle="60">
			<from x="5" y="5" z="5"/>
			<to x="0" y="0" z="0"/>
		</perspective>
	</views>
	<globals>
		<ambient r="0.1" g="0.1" b="0.1" a="1"/>
		<background r="0" g="0" b="0" a="1"/>
	</globals>
	<lights>
		<omni id="key" enabled="true">
			<location x="0" y="4" z="0" w="1"/>
			<ambient r="0" g="0" b="0" a="1"/>
			<diffuse r="1" g="1" b="1" a="1"/>
			<specular r="1" g="1" b="1" a="1"/>
		</omni>
	</lights>
	<textures>
		<texture id="wood" file="textures/wood.png"/>
	</textures>
	<materials>
		<material id="matte" shininess="1">
			<emission r="0" g="0" b="0" a="1"/>
			<ambient r="0.3" g="0.3" b="0.3" a="1"/>
			<diffuse r="0.6" g="0.6" b="0.6" a="1"/>
			<specular r="0" g="0" b="0" a="1"/>
		</material>
	</materials>
	<transformations/>
	<animations/>
	<primitives>
		<primitive id="side">
			<rectangle x1="-1" y1="-1" x2="1" y2="1"/>
		</primitive>
	</primitives>
	<components>
		<component id="box">
			<transformation/>
			<materials>
				<material id="matte"/>
			</materials>
			<texture id="wood" length_s="1" length_t="1"/>
			<children>
				<primitiveref id="side"/>
			</children>
		</component>
	</components>
</lxs>`

func writeScene(t *testing.T, name, contents string) string {
	t.Helper()

	sceneFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(sceneFile, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return sceneFile
}

func TestReadLocalScene(t *testing.T) {
	sceneFile := writeScene(t, "box.xml", minimalScene)

	model, warnings, err := ReadScene(sceneFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings; got %v", warnings)
	}

	tex, _ := model.Texture("wood")
	expPath := filepath.Join(filepath.Dir(sceneFile), "textures", "wood.png")
	if tex.File != expPath {
		t.Fatalf("expected texture path to be %q; got %q", expPath, tex.File)
	}
}

func TestReadRemoteScene(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scenes/box.lxs" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(minimalScene))
	}))
	defer server.Close()

	model, _, err := ReadScene(server.URL + "/scenes/box.lxs")
	if err != nil {
		t.Fatal(err)
	}

	tex, _ := model.Texture("wood")
	expPath := server.URL + "/scenes/textures/wood.png"
	if tex.File != expPath {
		t.Fatalf("expected texture path to be %q; got %q", expPath, tex.File)
	}
}

func TestReadErrors(t *testing.T) {
	_, _, err := ReadScene(writeScene(t, "box.obj", minimalScene))
	if expError := `readScene: unsupported file format ".obj"`; err == nil || err.Error() != expError {
		t.Fatalf("expected error %q; got %v", expError, err)
	}

	_, _, err = ReadScene(writeScene(t, "broken.xml", "<lxs><scene>"))
	if err == nil || !strings.Contains(err.Error(), "document:") {
		t.Fatalf("expected a document parse error; got %v", err)
	}

	noTextures := strings.Replace(minimalScene, `<texture id="wood" file="textures/wood.png"/>`, "", 1)
	_, _, err = ReadScene(writeScene(t, "empty.xml", noTextures))
	if !scene.IsValue(err) {
		t.Fatalf("expected a value error; got %v", err)
	}

	_, _, err = ReadScene(filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Fatal("expected reading a missing file to fail")
	}
}

func TestReadWarnings(t *testing.T) {
	doc := strings.Replace(minimalScene, `shininess="1"`, `shininess="-1"`, 1)

	model, warnings, err := ReadScene(writeScene(t, "warn.xml", doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning; got %v", warnings)
	}
	if mat, _ := model.Material("matte"); mat.Shininess != 10 {
		t.Fatalf("expected default shininess 10; got %g", mat.Shininess)
	}
}
