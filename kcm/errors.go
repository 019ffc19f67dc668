package kcm

import "errors"

// Sentinels are wrapped with %w directly; Fatal flattens its argument.
var ErrUnknownLayout = errors.New("unknown physical layout")
var ErrManifestHeader = errors.New("manifest header")
