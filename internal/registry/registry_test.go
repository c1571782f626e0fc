package registry

import (
	"testing"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int)          {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult {
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{"zz-stub-b", "Stub B"} })
	Register("zz-stub-a", func() Game { return &stubGame{"zz-stub-a", "Stub A"} })

	if !Exists("zz-stub-a") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz-missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("Title() = %q, expected Stub B", g.Title())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz-stub-a" || info.ID == "zz-stub-b" {
			ids = append(ids, info.ID)
			if info.Title == "" {
				t.Errorf("List() entry %q has no title", info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-stub-a" || ids[1] != "zz-stub-b" {
		t.Errorf("List() order = %v, expected sorted by ID", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{"zz-dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{"zz-dup", "Dup"} })
}

func TestLookup(t *testing.T) {
	Register("zz-look", func() Game { return &stubGame{"zz-look", "Look"} })

	info, ok := Lookup("zz-look")
	if !ok || info.Title != "Look" {
		t.Errorf("Lookup() = %+v, %v, expected the registered title", info, ok)
	}
	if _, ok := Lookup("zz-nothing"); ok {
		t.Error("Lookup() of unknown game should fail")
	}
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a factory building another ID should panic")
		}
	}()
	Register("zz-one", func() Game { return &stubGame{"zz-two", "Two"} })
}
