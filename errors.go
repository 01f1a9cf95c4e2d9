package tilemask

import "errors"

var (
	// ErrTransparentReference indicates the designated reference cell is
	// fully transparent, so no baseline exists to diff against.
	ErrTransparentReference = errors.New("tilemask: reference cell is fully transparent, no baseline for reconstruction")
	// ErrSheetTooSmall indicates the decoded image does not cover the
	// grammar's cell grid.
	ErrSheetTooSmall = errors.New("tilemask: image is smaller than the grammar's cell grid")
	// ErrBadGrammar indicates an inconsistent grammar definition.
	ErrBadGrammar = errors.New("tilemask: grammar geometry is invalid")
)
