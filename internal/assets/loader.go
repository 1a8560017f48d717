// Package assets fetches and decodes the scene's texture images. Decoding
// stays CPU-side; the renderer uploads pixels to the GPU on first use.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Texture is a decoded image ready for GPU upload.
type Texture struct {
	Name  string
	Image *image.RGBA
}

// LoadError reports a single failed texture fetch or decode.
type LoadError struct {
	Name string
	URL  string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load texture %q from %s: %v", e.Name, e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Without a client timeout one hung fetch would stall the whole batch
// forever; a timed-out slot fails like any other and trips the fallback.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load fetches one named texture. http(s) URLs go through an HTTP GET,
// anything else is treated as a filesystem path. No retries.
func Load(name, url string) (*Texture, error) {
	reader, err := open(url)
	if err != nil {
		return nil, &LoadError{Name: name, URL: url, Err: err}
	}
	defer reader.Close()

	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, &LoadError{Name: name, URL: url, Err: err}
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	return &Texture{Name: name, Image: rgba}, nil
}

func open(url string) (io.ReadCloser, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		resp, err := httpClient.Get(url)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(url)
}
