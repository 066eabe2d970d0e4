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

import (
	"errors"
	"fmt"
	"github.com/aws/smithy-go"
)

// The error kinds surfaced by aws-mfa-ls.  Components wrap the underlying cause with one of these values, so
// callers should test with errors.Is() instead of comparing error values directly.
var (
	// ErrInputUnavailable is returned when an MFA one-time code could not be obtained.
	ErrInputUnavailable = errors.New("MFA code input unavailable")
	// ErrAuthenticationFailed is returned when the token service rejects the MFA code or the long-term identity.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidDuration is returned when the requested credential duration is outside the accepted bounds.
	ErrInvalidDuration = errors.New("invalid credential duration")
	// ErrAccessDenied is returned when the storage service rejects the session credentials.
	ErrAccessDenied = errors.New("access denied")
	// ErrNotFound is returned when the requested bucket does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTransientService is returned for network or service level failures which may succeed if tried again.
	ErrTransientService = errors.New("transient service error")
)

var kinds = []error{
	ErrInputUnavailable, ErrAuthenticationFailed, ErrInvalidDuration,
	ErrAccessDenied, ErrNotFound, ErrTransientService,
}

// Wrap annotates err with the provided kind.  A nil err yields a nil error, and an err which is already
// classified is returned unchanged.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}

	if Classify(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// Classify returns the error kind for err, or nil if err has not been classified.
func Classify(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// ApiErrorCode returns the AWS API error code for err, or an empty string if err did not come from an AWS API
// response (for example a transport failure).
func ApiErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}
