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
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"strings"
)

type staticTokenProvider struct {
	code string
}

// NewStaticTokenProvider returns a MfaInputProvider which always returns the provided code, typically supplied
// on the command line or in the environment.
func NewStaticTokenProvider(code string) *staticTokenProvider {
	return &staticTokenProvider{code: strings.TrimSpace(code)}
}

// ReadInput returns the static code.
func (p *staticTokenProvider) ReadInput() (string, error) {
	if len(p.code) < 1 {
		return "", shared.Wrap(shared.ErrInputUnavailable, ErrNotConfigured)
	}
	return p.code, nil
}
