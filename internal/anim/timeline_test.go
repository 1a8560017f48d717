package anim

import (
	"image"
	"math"
	"testing"

	"Terra3D/internal/assets"
	"Terra3D/internal/scene"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func testScene() *scene.Scene {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	set := assets.NewSet(false,
		&assets.Texture{Name: "earth", Image: img},
		&assets.Texture{Name: "clouds", Image: img},
		&assets.Texture{Name: "bump", Image: img},
		&assets.Texture{Name: "specular", Image: img},
		&assets.Texture{Name: "background", Image: img},
	)
	return scene.Build(800, 600, set)
}

func TestTimelineRunsStepsInOrder(t *testing.T) {
	var order []string
	timeline := NewTimeline(
		Step{Tween: gween.New(0, 1, 1, ease.Linear), Apply: func(float32) {
			if len(order) == 0 || order[len(order)-1] != "a" {
				order = append(order, "a")
			}
		}},
		Step{Tween: gween.New(0, 1, 1, ease.Linear), Apply: func(float32) {
			if len(order) == 0 || order[len(order)-1] != "b" {
				order = append(order, "b")
			}
		}},
	)

	for i := 0; i < 40; i++ {
		timeline.Update(0.1)
	}

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Steps should run strictly in declaration order, got %v", order)
	}
}

func TestTimelineOverflowSpills(t *testing.T) {
	var last float32
	timeline := NewTimeline(
		Step{Tween: gween.New(0, 1, 1, ease.Linear), Apply: func(float32) {}},
		Step{Tween: gween.New(0, 1, 1, ease.Linear), Apply: func(v float32) { last = v }},
	)

	// One oversized tick finishes step one and carries 0.5s into step two
	timeline.Update(1.5)

	if math.Abs(float64(last)-0.5) > 1e-5 {
		t.Errorf("Expected spillover to advance the next tween to 0.5, got %f", last)
	}
}

func TestTimelineDone(t *testing.T) {
	timeline := NewTimeline(
		Step{Tween: gween.New(0, 1, 1, ease.Linear), Apply: func(float32) {}},
	)

	if timeline.Done() {
		t.Error("A fresh timeline should not be done")
	}

	timeline.Update(2.0)

	if !timeline.Done() {
		t.Error("Timeline should be done after its full duration")
	}

	// Updating a finished timeline is a no-op, not a panic
	timeline.Update(1.0)
}

func TestEntranceScalesGroupFromZero(t *testing.T) {
	s := testScene()
	timeline := NewEntrance(s)

	if s.Group.Scale.X() != 0 {
		t.Fatal("Entrance should start the group at zero scale")
	}

	timeline.Update(scene.EntranceTweenDuration)

	if math.Abs(float64(s.Group.Scale.X())-1.0) > 1e-4 {
		t.Errorf("Group should reach unit scale, got %f", s.Group.Scale.X())
	}
}

func TestEntranceSequencing(t *testing.T) {
	s := testScene()
	timeline := NewEntrance(s)
	navStart := s.NavBar.OffsetY

	// Halfway through the first tween: nav and title untouched
	timeline.Update(scene.EntranceTweenDuration / 2)

	if s.NavBar.OffsetY != navStart {
		t.Error("Nav bar should not move until the scale tween finishes")
	}
	if s.Title.Alpha != 0 {
		t.Error("Title should not fade until its turn")
	}
}

func TestEntranceCompletes(t *testing.T) {
	s := testScene()
	timeline := NewEntrance(s)

	timeline.Update(3*scene.EntranceTweenDuration + 0.1)

	if !timeline.Done() {
		t.Error("Entrance should finish after three tween durations")
	}
	if math.Abs(float64(s.Group.Scale.X())-1.0) > 1e-4 {
		t.Errorf("Group scale should settle at 1, got %f", s.Group.Scale.X())
	}
	if math.Abs(float64(s.NavBar.OffsetY)) > 1e-4 {
		t.Errorf("Nav bar should settle at offset 0, got %f", s.NavBar.OffsetY)
	}
	if math.Abs(float64(s.Title.Alpha)-1.0) > 1e-4 {
		t.Errorf("Title should settle fully opaque, got %f", s.Title.Alpha)
	}
}

func TestEntranceToleratesMissingTargets(t *testing.T) {
	s := testScene()
	s.NavBar = nil
	s.Title = nil

	timeline := NewEntrance(s)
	timeline.Update(5)

	if !timeline.Done() {
		t.Error("Entrance with missing overlays should still run the scale tween and finish")
	}
}
