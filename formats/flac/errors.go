// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a valid FLAC stream")
	ErrNoChannels          = errors.New("flac stream has no channels")
	ErrUnsupportedBitDepth = errors.New("unsupported flac bit depth")
	ErrChannelCountChanged = errors.New("flac frame channel count differs from stream info")
)
