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

package credentials

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"regexp"
	"strings"
	"time"
)

const (
	// SessionTokenProviderName is the name given to credentials issued by the SessionTokenBroker.
	SessionTokenProviderName = "SessionTokenBroker"
	// SessionTokenDurationMin is the minimum allowed Session Token credential duration by the AWS API.
	SessionTokenDurationMin = 15 * time.Minute
	// SessionTokenDurationMax is the maximum allowed Session Token credential duration by the AWS API.
	SessionTokenDurationMax = 36 * time.Hour
	// SessionTokenDurationDefault is the credential duration used when none is requested.
	SessionTokenDurationDefault = 1 * time.Hour
)

var codeRe = regexp.MustCompile(`^\d{6}$`)

// STS error codes which mean the caller could not be authenticated with the provided identity and MFA code.
var authErrorCodes = map[string]bool{
	"AccessDenied":               true,
	"ExpiredToken":               true,
	"InvalidAccessKeyId":         true,
	"InvalidClientTokenId":       true,
	"MissingAuthenticationToken": true,
	"SignatureDoesNotMatch":      true,
}

// SessionTokenBroker exchanges a long-term Identity and an MFA one-time code for short-lived session
// credentials using the GetSessionToken operation of the AWS STS API.
//
// Each call to Exchange performs at most one API request, and is never retried.  MFA codes are single use, so
// a retry must obtain a fresh code, and that decision belongs to the caller.  For the same reason, the same
// code must not be used in concurrent calls.
type SessionTokenBroker struct {
	Client stsApi
	Logger shared.Logger
	Clock  func() time.Time
}

// NewSessionTokenBroker configures a default SessionTokenBroker using an sts.Client created from the provided
// aws.Config.  The credentials in the aws.Config are never used, the Identity passed to Exchange() is.
func NewSessionTokenBroker(cfg aws.Config) *SessionTokenBroker {
	return &SessionTokenBroker{
		Client: sts.NewFromConfig(cfg),
		Logger: new(shared.DefaultLogger),
		Clock:  time.Now,
	}
}

// Exchange performs the GetSessionToken operation for the identity, authenticated by the MFA device and code.
// The duration must be between SessionTokenDurationMin and SessionTokenDurationMax (see ClampDuration).
//
// The returned Credentials always expire after the time the request was started, and no later than the
// requested duration after that time.  Errors are classified using the shared error kinds; a cancelled
// context is returned unchanged.  No Credentials are returned with a non-nil error.
//
//nolint:gocyclo
func (b *SessionTokenBroker) Exchange(ctx context.Context, id Identity, device DeviceReference, code string, d time.Duration) (*Credentials, error) {
	logger := shared.LoggerOrDefault(b.Logger)

	if err := id.Validate(); err != nil {
		return nil, shared.Wrap(shared.ErrAuthenticationFailed, err)
	}

	if device.IsZero() {
		return nil, shared.Wrap(shared.ErrAuthenticationFailed, ErrMfaRequired)
	}

	if !codeRe.MatchString(code) {
		return nil, shared.Wrap(shared.ErrAuthenticationFailed, ErrMalformedCode)
	}

	if d < SessionTokenDurationMin || d > SessionTokenDurationMax {
		return nil, shared.Wrap(shared.ErrInvalidDuration,
			fmt.Errorf("%s is not between %s and %s", d, SessionTokenDurationMin, SessionTokenDurationMax))
	}

	in := &sts.GetSessionTokenInput{
		DurationSeconds: aws.Int32(int32(d.Seconds())),
		SerialNumber:    aws.String(device.String()),
		TokenCode:       aws.String(code),
	}

	now := time.Now
	if b.Clock != nil {
		now = b.Clock
	}
	issued := now()

	logger.Debugf("requesting session token for %s with device %s, duration %s", id, device, d)
	out, err := b.Client.GetSessionToken(ctx, in, func(o *sts.Options) {
		o.Credentials = id.provider()
		o.RetryMaxAttempts = 1
	})
	if err != nil {
		return nil, classifyStsError(ctx, err)
	}

	creds := FromStsCredentials(out.Credentials, issued)
	if out.Credentials == nil || out.Credentials.Expiration == nil || !creds.HasKeys() {
		return nil, shared.Wrap(shared.ErrTransientService, fmt.Errorf("%w: incomplete GetSessionToken response", ErrInvalidCredentials))
	}

	if !creds.expiration.After(issued) {
		return nil, shared.Wrap(shared.ErrTransientService, fmt.Errorf("%w: returned already expired", ErrInvalidCredentials))
	}

	if limit := issued.Add(d); creds.expiration.After(limit) {
		logger.Debugf("session token expiration %s past requested duration, using %s", creds.expiration, limit)
		creds.expiration = limit
	}

	logger.Debugf("SESSION TOKEN CREDENTIALS: %v", creds)
	return creds, nil
}

// ClampDuration normalizes a requested duration for use with Exchange().  If less than 1, the default value will
// be used, if less than the minimum, the minimum value will be used, and if greater than the maximum, the maximum
// value will be used.
func (b *SessionTokenBroker) ClampDuration(d time.Duration) time.Duration {
	logger := shared.LoggerOrDefault(b.Logger)

	switch {
	case d < 1:
		logger.Debugf("provided duration less than 1, setting to default value")
		return SessionTokenDurationDefault
	case d < SessionTokenDurationMin:
		logger.Warningf("duration %s too short, setting to minimum value %s", d, SessionTokenDurationMin)
		return SessionTokenDurationMin
	case d > SessionTokenDurationMax:
		logger.Warningf("duration %s too long, setting to maximum value %s", d, SessionTokenDurationMax)
		return SessionTokenDurationMax
	}
	return d
}

func classifyStsError(ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}

	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return shared.Wrap(shared.ErrTransientService, err)
	}

	switch code := ae.ErrorCode(); {
	case authErrorCodes[code]:
		return shared.Wrap(shared.ErrAuthenticationFailed, err)
	case code == "ValidationError":
		// the same code is used for a bad token code format and an out of range duration
		if strings.Contains(strings.ToLower(ae.ErrorMessage()), "duration") {
			return shared.Wrap(shared.ErrInvalidDuration, err)
		}
		return shared.Wrap(shared.ErrAuthenticationFailed, err)
	}
	return shared.Wrap(shared.ErrTransientService, err)
}
