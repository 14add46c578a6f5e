//go:build !darwin && !linux

package autostart

func entryPath(string) string {
	return ""
}

func render([]string) ([]byte, error) {
	return nil, ErrUnsupported
}
