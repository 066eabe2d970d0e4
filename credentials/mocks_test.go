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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
	"time"
)

// stsMock provides a mock STS client used for testing.  Only the code 123456 is accepted, and each code may
// only be used once, like the real service.
type stsMock struct {
	stsApi
	calls    int
	used     map[string]bool
	identity aws.Credentials
	err      error
	out      *sts.GetSessionTokenOutput
	now      func() time.Time
}

// GetSessionToken implements the AWS API for getting Session Token credentials for testing.
func (m *stsMock) GetSessionToken(ctx context.Context, in *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error) {
	m.calls++

	o := new(sts.Options)
	for _, f := range optFns {
		f(o)
	}

	if o.Credentials != nil {
		v, err := o.Credentials.Retrieve(ctx)
		if err != nil {
			return nil, err
		}
		m.identity = v
	}

	if m.err != nil {
		return nil, m.err
	}

	if m.out != nil {
		return m.out, nil
	}

	d, err := validateDuration(in.DurationSeconds)
	if err != nil {
		return nil, err
	}

	if err = m.validateMfa(in.SerialNumber, in.TokenCode); err != nil {
		return nil, err
	}

	now := time.Now
	if m.now != nil {
		now = m.now
	}
	return &sts.GetSessionTokenOutput{Credentials: buildCredentials(now(), d)}, nil
}

// if duration != nil (default), must be in acceptable range.
func validateDuration(d *int32) (time.Duration, error) {
	if d != nil {
		t := time.Duration(*d) * time.Second
		if t < 900*time.Second || t > 36*time.Hour {
			return 0, &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "1 validation error detected: Value at 'durationSeconds' failed to satisfy constraint",
			}
		}
		return t, nil
	}
	return 12 * time.Hour, nil
}

func (m *stsMock) validateMfa(serial, code *string) error {
	if serial == nil || len(*serial) < 1 {
		return nil
	}

	if m.used == nil {
		m.used = make(map[string]bool)
	}

	if code != nil && *code == "123456" && !m.used[*code] {
		m.used[*code] = true
		return nil
	}

	return &smithy.GenericAPIError{
		Code:    "AccessDenied",
		Message: "MultiFactorAuthentication failed with invalid MFA one time pass code.",
	}
}

func buildCredentials(now time.Time, d time.Duration) *types.Credentials {
	t := now.Unix()

	return &types.Credentials{
		AccessKeyId:     aws.String(fmt.Sprintf("ASIAM0CK%d", t)),
		Expiration:      aws.Time(now.Add(d)),
		SecretAccessKey: aws.String(fmt.Sprintf("s3cR3TkEy%d", t)),
		SessionToken:    aws.String(fmt.Sprintf("t0k3N%d", t)),
	}
}
