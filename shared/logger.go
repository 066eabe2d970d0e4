/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package shared

// Logger is the leveled logging interface used throughout aws-mfa-ls.  The concrete implementation is
// simple-logger (https://github.com/mmmorris1975/simple-logger), configured during program initialization,
// but anything satisfying these methods may be plugged in (tests use a strings.Builder backed logger).
//
// Implementations must never be handed secret material. The credential types provided by this module
// redact themselves when formatted, so logging them with %v or %+v is safe.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
	Errorf(string, ...interface{})
}

// DefaultLogger is a Logger-compatible implementation for use as a fallback/default logger.  It does nothing.
type DefaultLogger bool

// Debugf does nothing.
func (l *DefaultLogger) Debugf(string, ...interface{}) {}

// Infof does nothing.
func (l *DefaultLogger) Infof(string, ...interface{}) {}

// Warningf does nothing.
func (l *DefaultLogger) Warningf(string, ...interface{}) {}

// Errorf does nothing.
func (l *DefaultLogger) Errorf(string, ...interface{}) {}

// LoggerOrDefault returns l, or a DefaultLogger if l is nil.
func LoggerOrDefault(l Logger) Logger {
	if l == nil {
		return new(DefaultLogger)
	}
	return l
}
