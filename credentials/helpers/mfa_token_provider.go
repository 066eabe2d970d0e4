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
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

type mfaTokenProvider struct {
	input  io.Reader
	prompt io.Writer
}

// NewMfaTokenProvider returns a MfaInputProvider which will read the MFA token information
// from the provided reader.
func NewMfaTokenProvider(in io.Reader) *mfaTokenProvider {
	return &mfaTokenProvider{input: in, prompt: os.Stderr}
}

// WithPrompt sets the writer used to display the prompt, which is os.Stderr by default.
func (p *mfaTokenProvider) WithPrompt(w io.Writer) *mfaTokenProvider {
	p.prompt = w
	return p
}

// ReadInput reads a single line from the reader supplied with NewMfaTokenProvider.  The prompt is only printed
// if the reader is interactive (a terminal), or is not a file at all.  A closed or empty input results in an
// error matching shared.ErrInputUnavailable.
func (p *mfaTokenProvider) ReadInput() (string, error) {
	if p.input == nil {
		return "", shared.Wrap(shared.ErrInputUnavailable, ErrNotConfigured)
	}

	if p.prompt != nil && IsInteractive(p.input) {
		_, _ = fmt.Fprint(p.prompt, "MFA token code: ")
	}

	var val string
	if _, err := fmt.Fscanln(p.input, &val); err != nil {
		return "", shared.Wrap(shared.ErrInputUnavailable, err)
	}

	val = strings.TrimSpace(val)
	if len(val) < 1 {
		return "", shared.Wrap(shared.ErrInputUnavailable, io.ErrUnexpectedEOF)
	}
	return val, nil
}

// IsInteractive returns false only if r is an *os.File which is not attached to a terminal.
func IsInteractive(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return true
}
