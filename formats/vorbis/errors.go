// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNoChannels is returned for streams that declare no audio channels.
var ErrNoChannels = errors.New("vorbis stream has no channels")
