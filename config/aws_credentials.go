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

package config

import (
	"fmt"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
)

// AwsCredentials contains the long-term IAM user credentials for a profile, read from the AWS shared credentials
// file or the standard AWS environment variables.
type AwsCredentials struct {
	AccessKeyId     string `ini:"aws_access_key_id,omitempty" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `ini:"aws_secret_access_key,omitempty" env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `ini:"aws_session_token,omitempty" env:"AWS_SESSION_TOKEN"`
}

// MergeIn takes the credential settings in the provided "creds" argument and applies them to the existing
// AwsCredentials object.  Keys are only ever replaced as a set, so an access key from one source is never paired
// with a secret key from another.  The last set with an access key takes priority.
func (c *AwsCredentials) MergeIn(creds ...*AwsCredentials) {
	for _, cr := range creds {
		if cr == nil || len(cr.AccessKeyId) < 1 {
			continue
		}

		c.AccessKeyId = cr.AccessKeyId
		c.SecretAccessKey = cr.SecretAccessKey
		c.SessionToken = cr.SessionToken
	}
}

// Identity returns the credentials as a credentials.Identity for the session token exchange.
func (c *AwsCredentials) Identity() credentials.Identity {
	return credentials.Identity{
		AccessKeyId:     c.AccessKeyId,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	}
}

// String implements fmt.Stringer, the secret values are redacted.
func (c AwsCredentials) String() string {
	return fmt.Sprintf("{AccessKeyId: %s, SecretAccessKey: <redacted>}", c.AccessKeyId)
}
