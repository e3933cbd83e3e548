// This file is part of s2d.
//
// s2d is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s2d is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s2d.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find returns the path of the resource in the resource directory. Returns an
// error if the resource does not exist or is a directory.
func Find(path ...string) (string, error) {
	b, err := resourcePath()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}
	return find(b, path...)
}

func find(base string, path ...string) (string, error) {
	p := filepath.Join(append([]string{base}, path...)...)

	fi, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("resources: %s is a directory", p)
	}

	return p, nil
}

// FindOr returns the path of the resource or the empty string if it can not
// be found.
func FindOr(path ...string) string {
	p, err := Find(path...)
	if err != nil {
		return ""
	}
	return p
}
