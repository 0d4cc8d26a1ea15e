// SPDX-License-Identifier: Unlicense OR MIT

package ui

import "github.com/ouigo/oui/layout"

// Option configures a Context.
type Option func(cfg *layout.Config)

// MaxItems bounds the number of items per frame, root included.
func MaxItems(n int) Option {
	return func(cfg *layout.Config) {
		cfg.MaxItems = n
	}
}

// MaxBufferSize bounds the total size of item data per frame.
func MaxBufferSize(n int) Option {
	return func(cfg *layout.Config) {
		cfg.MaxBufferSize = n
	}
}

// MaxDataSize bounds the size of a single AllocData request.
func MaxDataSize(n int) Option {
	return func(cfg *layout.Config) {
		cfg.MaxDataSize = n
	}
}
