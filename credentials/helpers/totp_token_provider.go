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

import (
	"fmt"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"strings"
	"time"
)

const totpPeriod = 30

type totpTokenProvider struct {
	secret string
	Clock  func() time.Time
}

// NewTotpTokenProvider returns a MfaInputProvider which generates codes from the base32 encoded seed of a
// virtual MFA device, the same value encoded in the QR code shown when the device is registered.
func NewTotpTokenProvider(secret string) *totpTokenProvider {
	secret = strings.ToUpper(strings.Join(strings.Fields(secret), ""))
	return &totpTokenProvider{secret: secret, Clock: time.Now}
}

// ReadInput generates the 6 digit code for the current 30 second period.
func (p *totpTokenProvider) ReadInput() (string, error) {
	if len(p.secret) < 1 {
		return "", shared.Wrap(shared.ErrInputUnavailable, ErrNotConfigured)
	}

	now := time.Now
	if p.Clock != nil {
		now = p.Clock
	}

	code, err := totp.GenerateCodeCustom(p.secret, now(), totp.ValidateOpts{
		Period:    totpPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", shared.Wrap(shared.ErrInputUnavailable, fmt.Errorf("failed to generate TOTP code: %w", err))
	}
	return code, nil
}
