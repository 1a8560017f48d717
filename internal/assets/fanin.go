package assets

import (
	"Terra3D/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Slot names one texture the scene wants and where to fetch it from.
type Slot struct {
	Name string
	URL  string
}

// Set is the settled outcome of a batch load. The gate is all-or-nothing:
// if any slot failed, Placeholder is true and Get hides every texture, even
// the ones that loaded. Partial texture sets are never rendered.
type Set struct {
	Placeholder bool
	textures    map[string]*Texture
}

// NewSet builds an already-settled Set from in-memory textures.
func NewSet(placeholder bool, textures ...*Texture) *Set {
	set := &Set{
		Placeholder: placeholder,
		textures:    make(map[string]*Texture, len(textures)),
	}
	for _, texture := range textures {
		set.textures[texture.Name] = texture
	}
	return set
}

// Get returns the named texture, or nil if it is absent or the whole batch
// fell back to placeholder mode.
func (s *Set) Get(name string) *Texture {
	if s.Placeholder {
		return nil
	}
	return s.textures[name]
}

// Loaded reports how many slots actually settled with an image, regardless
// of the placeholder gate.
func (s *Set) Loaded() int {
	return len(s.textures)
}

// LoadAll fetches every slot concurrently and waits for all of them to
// settle before returning; the scene is never built against an unsettled
// batch. Each failure is logged individually.
func LoadAll(slots []Slot) *Set {
	results := make([]*Texture, len(slots))
	var group errgroup.Group

	for i, slot := range slots {
		i, slot := i, slot
		group.Go(func() error {
			texture, err := Load(slot.Name, slot.URL)
			if err != nil {
				logger.Log.Error("Texture load failed",
					zap.String("name", slot.Name),
					zap.String("url", slot.URL),
					zap.Error(err))
				return err
			}
			results[i] = texture
			return nil
		})
	}

	err := group.Wait()

	set := &Set{textures: make(map[string]*Texture, len(slots))}
	for _, texture := range results {
		if texture != nil {
			set.textures[texture.Name] = texture
		}
	}
	if err != nil {
		set.Placeholder = true
		logger.Log.Warn("Falling back to placeholder materials",
			zap.Int("loaded", set.Loaded()),
			zap.Int("wanted", len(slots)))
	} else {
		logger.Log.Info("All textures loaded", zap.Int("count", set.Loaded()))
	}
	return set
}
