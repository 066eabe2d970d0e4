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
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrInvalidCredentials is the error returned when a set of invalid AWS credentials is detected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrExpiredCredentials is the error returned when session credentials are used after their expiration time.
var ErrExpiredCredentials = errors.New("session credentials expired")

// ErrMfaRequired is the error returned when an exchange is attempted without an MFA device.
var ErrMfaRequired = errors.New("MFA required, but no device configured")

// ErrMalformedCode is the error returned when the MFA one-time code is not a 6 digit value.
var ErrMalformedCode = errors.New("malformed MFA token code")

type stsApi interface {
	GetSessionToken(ctx context.Context, params *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error)
}
