package sdlhost

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 32

// cachedTexture keeps a texture with the size it was rendered at.
type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache holds rendered text and glyph textures, evicting the least
// recently used one when full. Not safe for concurrent use; the host only
// touches it from its frame loop.
type TextureCache struct {
	textures map[string]cachedTexture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]cachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// GetOrCreate returns the texture under key, building it with create on a
// miss. A failed create is not cached.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, int32, int32, error)) (*sdl.Texture, int32, int32, error) {
	if entry, ok := c.textures[key]; ok {
		c.touch(key)
		return entry.texture, entry.w, entry.h, nil
	}

	texture, w, h, err := create()
	if err != nil {
		return nil, 0, 0, err
	}

	if len(c.order) >= c.maxSize {
		c.evict(c.order[0])
	}
	c.textures[key] = cachedTexture{texture: texture, w: w, h: h}
	c.order = append(c.order, key)
	return texture, w, h, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = key
			return
		}
	}
}

func (c *TextureCache) evict(key string) {
	entry, ok := c.textures[key]
	if !ok {
		return
	}
	entry.texture.Destroy()
	delete(c.textures, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Destroy frees every cached texture.
func (c *TextureCache) Destroy() {
	for _, entry := range c.textures {
		entry.texture.Destroy()
	}
	c.textures = make(map[string]cachedTexture)
	c.order = c.order[:0]
}
