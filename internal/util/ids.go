// internal/util/ids.go
// Generator ID untuk request & sumur hasil import tanpa id

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// NewWellID: ID pendek berprefix untuk sumur import yang kolom id-nya kosong.
func NewWellID() string {
	return "W-" + uuid.New().String()[:8]
}
