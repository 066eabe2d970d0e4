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
	"errors"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
)

type chainProvider []MfaInputProvider

// Chain returns a MfaInputProvider which returns the code from the first provider that has a source configured.
// A provider reporting ErrNotConfigured is skipped, any other error is returned without consulting the rest.
func Chain(p ...MfaInputProvider) MfaInputProvider {
	c := make(chainProvider, 0, len(p))
	for _, v := range p {
		if v != nil {
			c = append(c, v)
		}
	}
	return c
}

// ReadInput walks the chain.
func (c chainProvider) ReadInput() (string, error) {
	for _, p := range c {
		code, err := p.ReadInput()
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				continue
			}
			return "", err
		}
		return code, nil
	}
	return "", shared.Wrap(shared.ErrInputUnavailable, ErrNotConfigured)
}
