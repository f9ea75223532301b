package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrImageUnavailable is returned when an image cannot be opened or decoded.
// It is distinct from extraction failures, which happen after a successful
// decode.
var ErrImageUnavailable = errors.New("image unavailable")

// Decode reads and decodes an image in any registered format (PNG, JPEG,
// GIF or WebP). It returns the decoded image and the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to decode image: %w", ErrImageUnavailable, err)
	}
	return img, format, nil
}

// DecodeBase64 decodes an image from base64 text. A "data:" URL prefix such
// as "data:image/png;base64," is accepted and ignored.
func DecodeBase64(data string) (image.Image, string, error) {
	if strings.HasPrefix(data, "data:") {
		if i := strings.IndexByte(data, ','); i >= 0 {
			data = data[i+1:]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 image data: %w", ErrImageUnavailable, err)
	}
	return Decode(bytes.NewReader(raw))
}

type cachedImage struct {
	img    image.Image
	format string
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded images keyed by their file path. Once an image is
// loaded, subsequent Load() calls for the same path return the cached copy
// without disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/image.png") // Optional: free memory
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF and WebP. Errors wrap
// ErrImageUnavailable.
func (c *ImageCache) Load(path string) (image.Image, error) {
	img, _, err := c.load(path)
	return img, err
}

func (c *ImageCache) load(path string) (image.Image, string, error) {
	c.mu.RLock()
	if e, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return e.img, e.format, nil
	}
	c.mu.RUnlock()

	if path == "" {
		return nil, "", fmt.Errorf("%w: image path cannot be empty", ErrImageUnavailable)
	}

	f, err := os.Open(path) // #nosec G304 - user-specified image path, intended to be read
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to open image: %w", ErrImageUnavailable, err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	c.images[path] = cachedImage{img: img, format: format}
	c.mu.Unlock()

	return img, format, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded format: "png", "jpeg", "gif" or "webp".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the source in bytes, when known.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
}

// DescribeImage returns the metadata of an already decoded image.
func DescribeImage(img image.Image, format string) *ImageInfo {
	bounds := img.Bounds()

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Paletted:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorDepth: colorDepth,
		HasAlpha:   hasAlpha,
	}
}

// LoadImageInfo loads an image into the cache (if not already cached) and
// returns its metadata including dimensions, format, color depth, alpha
// channel presence, and file size.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, format, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := DescribeImage(img, format)
	info.FileSizeBytes = stat.Size()
	return info, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
// The image is loaded into the cache if not already present.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
