/*
Copyright The Fileops Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package io reads recorded transfer progress.
package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSample parses a cumulative number of transferred bytes.
func ParseSample(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number of bytes %q: %w", s, err)
	}
	return n, nil
}

// ReadSamples reads one cumulative number of transferred bytes per line.
// Lines are terminated by LF or CRLF. Blank lines and lines starting with '#'
// are skipped.
func ReadSamples(reader io.Reader) ([]int64, error) {
	var samples []int64
	br := bufio.NewReader(reader)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		text := strings.TrimSpace(line)
		if text != "" && !strings.HasPrefix(text, "#") {
			n, parseErr := ParseSample(text)
			if parseErr != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, parseErr)
			}
			samples = append(samples, n)
		}
		if err == io.EOF {
			return samples, nil
		}
	}
}
