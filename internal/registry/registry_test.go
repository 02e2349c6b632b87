package registry

import (
	"testing"

	"github.com/vovakirdan/tui-rtype/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game not found")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" && info.Title == "Stub stub-a" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
