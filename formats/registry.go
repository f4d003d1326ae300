// SPDX-License-Identifier: EPL-2.0

// Package formats wires every built-in decoder into an audio.Registry.
package formats

import (
	"sync"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/aiff"
	"github.com/ik5/audsig/formats/flac"
	"github.com/ik5/audsig/formats/mp3"
	"github.com/ik5/audsig/formats/vorbis"
	"github.com/ik5/audsig/formats/wav"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *audio.Registry
)

// Register adds the built-in decoders to reg under their usual file
// extensions.
func Register(reg *audio.Registry) {
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})
}

// Default returns a shared registry holding the built-in decoders.
// Callers may register additional formats on it.
func Default() *audio.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = audio.NewRegistry()
		Register(defaultRegistry)
	})

	return defaultRegistry
}
