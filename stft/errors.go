// SPDX-License-Identifier: EPL-2.0

package stft

import "errors"

var (
	// ErrInvalidParams is wrapped with the name of the offending field.
	ErrInvalidParams  = errors.New("invalid stft parameters")
	ErrUnknownWindow  = errors.New("unknown window type")
	ErrParamsMismatch = errors.New("spectrogram does not match stft parameters")
)
