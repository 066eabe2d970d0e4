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

package helpers

import "errors"

// ErrNotConfigured is returned by an MfaInputProvider which has no source for a code, for example a static
// provider with an empty value.  It is always wrapped with shared.ErrInputUnavailable.
var ErrNotConfigured = errors.New("MFA code source not configured")

// MfaInputProvider specifies the interface for getting MFA values (typically OTP codes) to exchange for session
// credentials.  Implementations return an error matching shared.ErrInputUnavailable if a code can not be obtained.
type MfaInputProvider interface {
	ReadInput() (string, error)
}
