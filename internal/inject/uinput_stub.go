//go:build !linux

package inject

import "errors"

func newUinput() (Synthesizer, error) {
	return nil, errors.New("uinput backend is only available on linux")
}
