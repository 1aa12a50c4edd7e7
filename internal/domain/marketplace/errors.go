package marketplace

import "errors"

// Store errors. Repositories translate driver specific failures into these
// so use cases never depend on gorm or a particular database.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrReferenceMissing = errors.New("referenced record missing")
)
