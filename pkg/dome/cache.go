package dome

// Cache memoizes Build by its two inputs. Radius and grid usually come from
// live controls, so consecutive frames mostly ask for the same mesh.
//
// Cache is not safe for concurrent use.
type Cache struct {
	mesh  Mesh
	valid bool

	hits   uint64
	misses uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the mesh for (radius, grid), rebuilding it only when either
// input differs from the previous call.
func (c *Cache) Get(radius float64, grid int) Mesh {
	if c.valid && c.mesh.Radius == radius && c.mesh.Grid == normGrid(grid) {
		c.hits++
		return c.mesh
	}
	c.misses++
	c.mesh = Build(radius, grid)
	c.valid = true
	return c.mesh
}

// Invalidate forces the next Get to rebuild.
func (c *Cache) Invalidate() {
	c.valid = false
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

func normGrid(grid int) int {
	if grid < 0 {
		return 0
	}
	return grid
}
