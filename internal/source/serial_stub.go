//go:build !linux

package source

import (
	"fmt"
	"os"
)

func openSerial(path string, baud int) (*os.File, error) {
	return nil, fmt.Errorf("serial NMEA feed not supported on this platform")
}
