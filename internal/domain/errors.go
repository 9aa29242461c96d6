package domain

import "errors"

var (
	ErrSnapshotNotFound = errors.New("no Vortex state backup found")
	ErrSnapshotParse    = errors.New("state backup is not valid JSON")
	ErrSnapshotSchema   = errors.New("state backup has no installed-mods section")
	ErrGameNotFound     = errors.New("game not found in state backup")
	ErrUnknownFormat    = errors.New("unknown export format")
)
