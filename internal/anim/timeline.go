// Package anim runs the one-shot entrance timeline: a handful of tweens
// played back-to-back in declaration order. No replay, no cancellation.
package anim

import (
	"Terra3D/internal/scene"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Step pairs a tween with the property write it drives.
type Step struct {
	Tween *gween.Tween
	Apply func(value float32)
}

// Timeline plays its steps strictly sequentially; leftover frame time from a
// finishing tween spills into the next one so the total duration stays exact.
type Timeline struct {
	steps   []Step
	current int
}

func NewTimeline(steps ...Step) *Timeline {
	return &Timeline{steps: steps}
}

func (t *Timeline) Done() bool {
	return t.current >= len(t.steps)
}

// Update advances the active step by deltaTime seconds.
func (t *Timeline) Update(deltaTime float32) {
	for deltaTime > 0 && !t.Done() {
		step := t.steps[t.current]
		value, finished := step.Tween.Update(deltaTime)
		step.Apply(value)
		if !finished {
			return
		}
		deltaTime = step.Tween.Overflow
		t.current++
	}
}

// NewEntrance builds the scene's entrance sequence: the rotating group scales
// up from nothing, the nav bar slides in from above, the title fades in.
// Each tween shares the default duration; nil targets are skipped, so a
// scene without a nav bar or title still animates what it has.
func NewEntrance(s *scene.Scene) *Timeline {
	var steps []Step

	if s.Group != nil {
		group := s.Group
		group.SetScale(0)
		steps = append(steps, Step{
			Tween: gween.New(0, 1, scene.EntranceTweenDuration, ease.OutQuad),
			Apply: func(v float32) { group.SetScale(v) },
		})
	}

	if s.NavBar != nil {
		nav := s.NavBar
		start := nav.OffsetY
		steps = append(steps, Step{
			Tween: gween.New(start, 0, scene.EntranceTweenDuration, ease.OutQuad),
			Apply: func(v float32) { nav.OffsetY = v },
		})
	}

	if s.Title != nil {
		title := s.Title
		steps = append(steps, Step{
			Tween: gween.New(0, 1, scene.EntranceTweenDuration, ease.Linear),
			Apply: func(v float32) { title.Alpha = v },
		})
	}

	return NewTimeline(steps...)
}
