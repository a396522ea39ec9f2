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

package humanize

import (
	"math"
	"time"
)

// FormatDuration formats a duration into a human-readable string.
// It rounds the duration to the nearest second, millisecond, or microsecond
// depending on its value.
func FormatDuration(d time.Duration) string {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	default:
		d = d.Round(time.Microsecond)
	}
	return d.String()
}

// FormatRemaining formats an estimated number of seconds left. Unknown
// estimates are shown as "--" and stalled transfers as "∞". Overdue estimates
// are shown as zero.
func FormatRemaining(seconds float64) string {
	switch {
	case math.IsNaN(seconds):
		return "--"
	case math.IsInf(seconds, 1):
		return "∞"
	case seconds <= 0:
		return "0s"
	}
	return time.Duration(math.Ceil(seconds) * float64(time.Second)).String()
}
