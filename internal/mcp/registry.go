// mcp/registry.go
// Registri mapping nama tool ke handler function

package mcp

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// Registry menyimpan peta nama tool -> http.Handler secara thread-safe.
type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

func NewRegistry() *Registry {
	return &Registry{data: make(map[string]http.Handler)}
}

// Register mendaftarkan handler untuk sebuah tool.
// Jika nama sudah ada, handler lama akan ditimpa.
func (reg *Registry) Register(name string, h http.Handler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.data[name] = h
}

// RegisterFunc mendaftarkan handler function biasa (http.HandlerFunc).
func (reg *Registry) RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	reg.Register(name, http.HandlerFunc(fn))
}

// Get mengambil handler berdasarkan nama tool.
func (reg *Registry) Get(name string) (http.Handler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	h, ok := reg.data[name]
	return h, ok
}

// MustGet seperti Get namun panic jika tidak ditemukan.
// Cocok untuk inisialisasi saat startup (fail-fast).
func (reg *Registry) MustGet(name string) http.Handler {
	if h, ok := reg.Get(name); ok {
		return h
	}
	panic(fmt.Sprintf("mcp: tool not found: %s", name))
}

// List mengembalikan daftar nama tool terdaftar (urut alfabet).
func (reg *Registry) List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, 0, len(reg.data))
	for k := range reg.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
