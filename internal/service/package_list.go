// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ReadPackageList resolves the --package argument. When arg names an
// existing regular file, every line of it is a package identifier with
// trailing whitespace stripped; blank lines are dropped. Otherwise arg
// itself is the only identifier.
func ReadPackageList(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil || !info.Mode().IsRegular() {
		id := trimPackageID(arg)
		if id == "" {
			return nil, ErrNoPackages
		}
		return []string{id}, nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageList, err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := trimPackageID(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackageList, arg, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoPackages, arg)
	}

	return ids, nil
}

func trimPackageID(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
